package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscope/heliobot/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Topic
		ok    bool
	}{
		// Rule order is the tie-break: cme wins over sun and storm topics.
		{"what causes a cme during solar storms", TopicCME, true},
		{"solar cme incoming", TopicCME, true},
		{"coronal mass ejection speed", TopicCME, true},
		{"tell me about aditya l1", TopicAditya, true},
		{"what is an x-class flare", TopicSolarFlare, true},
		{"how fast is the solar wind", TopicSolarWind, true},
		{"geomagnetic activity today", TopicGeomagneticStorm, true},
		{"is there a storm coming", TopicGeomagneticStorm, true},
		{"can i see the aurora tonight", TopicAurora, true},
		{"what is the magnetosphere", TopicMagnetosphere, true},
		{"explain space weather", TopicSpaceWeather, true},
		{"how old is the sun", TopicSun, true},
		{"solar cycle length", TopicSun, true},
		{"hello there", TopicGreeting, true},
		{"namaste", TopicGreeting, true},
		{"sensor values please", TopicSolarData, true},
		{"recommend me a pizza", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := Classify(Normalize(tt.query))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, topic)
		})
	}
}

func TestRespondMultiTopicUsesPick(t *testing.T) {
	for idx := 0; idx < 3; idx++ {
		r := NewResponderWithPick(func(n int) int {
			require.Equal(t, 3, n)
			return idx
		})
		cand := r.Respond("what is a CME?")
		assert.Equal(t, multiResponses[TopicCME][idx], cand.Text)
		assert.Equal(t, domain.SourceLocal, cand.Source)
		assert.Less(t, cand.Confidence, 0.8)
	}
}

func TestRespondSingleTopic(t *testing.T) {
	r := NewResponderWithPick(func(int) int {
		t.Fatal("single-response topics must not draw a random pick")
		return 0
	})
	cand := r.Respond("can I see the aurora tonight?")
	assert.Equal(t, singleResponses[TopicAurora], cand.Text)
	assert.Equal(t, domain.SourceLocal, cand.Source)
}

func TestRespondDefault(t *testing.T) {
	r := NewResponder()
	cand := r.Respond("recommend me a pizza")
	assert.Equal(t, DefaultResponse, cand.Text)
	assert.Equal(t, domain.SourceLocal, cand.Source)
	assert.Less(t, cand.Confidence, 0.8)
}

func TestEveryTopicHasResponses(t *testing.T) {
	for _, rule := range topicRules {
		_, multi := multiResponses[rule.topic]
		_, single := singleResponses[rule.topic]
		assert.True(t, multi || single, "topic %s has no responses", rule.topic)
		assert.False(t, multi && single, "topic %s is both multi and single", rule.topic)
	}
	for topic, answers := range multiResponses {
		assert.Len(t, answers, 3, "topic %s", topic)
	}
}
