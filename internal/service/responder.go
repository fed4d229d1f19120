package service

import (
	"math/rand"
	"strings"

	"github.com/helioscope/heliobot/internal/domain"
)

// Topic identifies a canned-response family.
type Topic string

const (
	TopicCME              Topic = "cme"
	TopicAditya           Topic = "aditya"
	TopicSolarFlare       Topic = "solar_flare"
	TopicSolarWind        Topic = "solar_wind"
	TopicGeomagneticStorm Topic = "geomagnetic_storm"
	TopicAurora           Topic = "aurora"
	TopicMagnetosphere    Topic = "magnetosphere"
	TopicSpaceWeather     Topic = "space_weather"
	TopicSun              Topic = "sun"
	TopicGreeting         Topic = "greeting"
	TopicHelp             Topic = "help"
	TopicSolarData        Topic = "solar_data"
)

// topicRule maps trigger substrings to a topic. Rules are evaluated in slice
// order and the first match wins, so narrow topics must stay ahead of broad
// ones: "cme" before the storm topics, everything before "sun"/"solar".
type topicRule struct {
	topic    Topic
	triggers []string
}

var topicRules = []topicRule{
	{TopicCME, []string{"cme", "coronal mass ejection"}},
	{TopicAditya, []string{"aditya", "l1", "lagrange"}},
	{TopicSolarFlare, []string{"flare"}},
	{TopicSolarWind, []string{"solar wind"}},
	{TopicGeomagneticStorm, []string{"geomagnetic", "storm"}},
	{TopicAurora, []string{"aurora", "northern lights"}},
	{TopicMagnetosphere, []string{"magnetosphere", "magnetic field"}},
	{TopicSpaceWeather, []string{"space weather"}},
	{TopicSun, []string{"sun", "solar"}},
	{TopicGreeting, []string{"hello", "hi", "hey", "namaste"}},
	{TopicHelp, []string{"help", "what can you do"}},
	{TopicSolarData, []string{"sensor", "reading", "data"}},
}

// multiResponses are topics that rotate between several canned answers.
var multiResponses = map[Topic][]string{
	TopicCME: {
		"A coronal mass ejection (CME) is a huge burst of plasma and magnetic field thrown off the Sun's corona. A fast CME aimed at Earth can arrive in one to three days and trigger geomagnetic storms.",
		"CMEs are eruptions of billions of tons of solar material. When one sweeps past Earth it can compress the magnetosphere, disturb power grids and satellites, and light up bright aurora.",
		"Think of a CME as the Sun flinging a piece of its atmosphere into space. Their speed ranges from about 250 km/s to over 3000 km/s, and the fastest ones cause the strongest storms here on Earth.",
	},
	TopicAditya: {
		"Aditya-L1 is India's first dedicated solar observatory, launched by ISRO in September 2023. It studies the Sun from a halo orbit around the first Sun-Earth Lagrange point, about 1.5 million km away.",
		"Aditya-L1 carries seven instruments that watch the photosphere, chromosphere and corona, plus in-situ sensors for the solar wind. Its vantage at L1 gives it an uninterrupted view of the Sun.",
		"The Aditya-L1 mission is designed to answer why the corona is so much hotter than the solar surface and how solar storms begin, observing continuously from the L1 Lagrange point.",
	},
	TopicSolarFlare: {
		"A solar flare is a sudden flash of radiation from the Sun, usually above a sunspot group. Flares are ranked A, B, C, M and X, with each class ten times stronger than the last.",
		"Solar flares release energy equal to millions of hydrogen bombs in just minutes. Strong flares can black out high-frequency radio on Earth's dayside almost immediately.",
		"Flares happen when twisted magnetic field lines above sunspots snap and reconnect. X-class flares, the strongest kind, can disrupt radio, GPS and even power systems.",
	},
	TopicSolarWind: {
		"The solar wind is a continuous stream of charged particles flowing outward from the Sun at 300 to 800 km/s. It shapes comet tails and carves out the heliosphere around our solar system.",
		"Solar wind speed and density change constantly. High-speed streams from coronal holes buffet Earth's magnetic field and can spark minor geomagnetic storms that last for days.",
		"The Sun loses about a million tons of material every second to the solar wind. Earth's magnetic field deflects most of it, but some energy leaks in near the poles and feeds the aurora.",
	},
	TopicSpaceWeather: {
		"Space weather describes the changing conditions in space driven by the Sun: flares, CMEs, solar wind streams and energetic particles. It matters because it affects satellites, astronauts, aviation and power grids.",
		"Space weather is to space what meteorology is to the atmosphere. Forecasters watch the Sun around the clock, because a severe event can disrupt GPS, radio and electrical infrastructure.",
		"The Sun drives all space weather. Quiet periods mean calm conditions, while active periods bring flares and CMEs that ripple through the whole solar system within hours or days.",
	},
	TopicSun: {
		"The Sun is a 4.6-billion-year-old main-sequence star that holds 99.8% of the solar system's mass. Its core fuses about 600 million tons of hydrogen into helium every second.",
		"The Sun's surface sits near 5,500 °C, but its outer atmosphere, the corona, is mysteriously heated to millions of degrees. Solving that puzzle is a major goal of missions like Aditya-L1.",
		"Our Sun goes through an 11-year activity cycle. At solar maximum its face is dotted with sunspots and eruptions are frequent; at minimum it can be spotless for weeks.",
	},
}

// singleResponses are topics answered with one fixed string.
var singleResponses = map[Topic]string{
	TopicGeomagneticStorm: "A geomagnetic storm is a disturbance of Earth's magnetic field caused by solar wind shocks or CMEs. Storms are ranked G1 (minor) to G5 (extreme); strong ones can damage transformers, disrupt satellites and push aurora far from the poles.",
	TopicAurora:           "Aurora appear when charged particles guided by Earth's magnetic field collide with oxygen and nitrogen high in the atmosphere. Oxygen glows green and red, nitrogen blue and purple. During strong geomagnetic storms the ovals expand toward the equator.",
	TopicMagnetosphere:    "The magnetosphere is the region around Earth dominated by its magnetic field. It deflects the solar wind like an invisible shield, compressed on the day side and stretched into a long tail on the night side.",
	TopicGreeting:         "Hello! I'm your solar weather assistant. Ask me about the Sun, solar flares, CMEs, the solar wind, geomagnetic storms, aurora or the Aditya-L1 mission.",
	TopicHelp:             "I can explain solar weather topics: try asking about CMEs, solar flares, the solar wind, geomagnetic storms, aurora or Aditya-L1. Use /conditions for live sensor readouts and /mode to switch between web search and model answers.",
	TopicSolarData:        "Live solar readouts come from space weather observatories: the planetary K-index tracks geomagnetic disturbance, and solar wind monitors report speed, density and magnetic field at L1. Send /conditions to see the latest values.",
}

// DefaultResponse is returned when no topic matches.
const DefaultResponse = "I'm not sure about that one. I can help with solar weather topics. Ask me about the Sun, solar flares, CMEs, the solar wind, geomagnetic storms, aurora or the Aditya-L1 mission."

// localConfidence is the fixed confidence of every local canned answer. It
// sits below config.ConfidenceThreshold, so local answers are always eligible
// for remote escalation when the model API is configured.
const localConfidence = 0.6

// Classify maps a normalized query to the first topic whose trigger substring
// appears in it. ok is false when nothing matches.
func Classify(normalized string) (topic Topic, ok bool) {
	for _, rule := range topicRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(normalized, trigger) {
				return rule.topic, true
			}
		}
	}
	return "", false
}

// Responder selects canned local answers for classified queries.
type Responder struct {
	pick func(n int) int
}

// NewResponder creates a responder using uniform random selection for topics
// that carry several canned answers.
func NewResponder() *Responder {
	return &Responder{pick: rand.Intn}
}

// NewResponderWithPick creates a responder with a custom pick function.
// Tests use it to force deterministic selection.
func NewResponderWithPick(pick func(n int) int) *Responder {
	return &Responder{pick: pick}
}

// Respond classifies the raw query and returns a local response candidate.
func (r *Responder) Respond(query string) domain.ResponseCandidate {
	topic, ok := Classify(Normalize(query))
	if !ok {
		return localCandidate(DefaultResponse)
	}
	if answers, multi := multiResponses[topic]; multi {
		return localCandidate(answers[r.pick(len(answers))])
	}
	return localCandidate(singleResponses[topic])
}

func localCandidate(text string) domain.ResponseCandidate {
	return domain.ResponseCandidate{
		Text:       text,
		Confidence: localConfidence,
		Source:     domain.SourceLocal,
	}
}
