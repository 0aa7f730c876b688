// Package knowledge is the local knowledge-lookup capability: a fact table of
// well-documented claims with a pluggable similarity matcher in front of it.
package knowledge

import "github.com/ppiankov/veridex/internal/model"

// Fact is a known claim with its verdict and supporting material
type Fact struct {
	Verdict     model.Verdict
	Confidence  float64
	Explanation string
	Evidence    []string
	Sources     []string
}

// Store holds the fact table keyed by a normalized claim phrase
type Store struct {
	facts map[string]Fact
	keys  []string
}

// NewStore creates a store seeded with the built-in fact table
func NewStore() *Store {
	s := &Store{facts: make(map[string]Fact)}
	for _, e := range builtinFacts {
		s.Add(e.key, e.fact)
	}
	return s
}

// Add registers a fact under its claim phrase
func (s *Store) Add(key string, fact Fact) {
	if _, exists := s.facts[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.facts[key] = fact
}

// Keys returns the claim phrases in insertion order
func (s *Store) Keys() []string {
	return s.keys
}

// Lookup returns the fact stored under the claim phrase
func (s *Store) Lookup(key string) (Fact, bool) {
	f, ok := s.facts[key]
	return f, ok
}

// Len returns the number of facts
func (s *Store) Len() int {
	return len(s.keys)
}

type builtinFact struct {
	key  string
	fact Fact
}

// builtinFacts covers recurring misinformation plus a few anchor truths.
// Keys are lowercase claim phrases matched against incoming claims.
var builtinFacts = []builtinFact{
	{"earth is flat", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  99,
		Explanation: "The Earth is an oblate spheroid. This has been proven through satellite imagery, physics, and centuries of scientific observation.",
		Evidence: []string{
			"Satellite images show Earth's curvature",
			"Ships disappear hull-first over the horizon",
			"Different star constellations visible from different latitudes",
			"Lunar eclipses show Earth's round shadow on the moon",
		},
		Sources: []string{"NASA", "National Geographic", "Scientific consensus"},
	}},
	{"vaccines cause autism", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  98,
		Explanation: "Multiple large-scale studies involving millions of children have found no link between vaccines and autism. The original study claiming this was retracted due to fraud.",
		Evidence: []string{
			"Wakefield's 1998 study was retracted and author lost medical license",
			"Meta-analysis of 1.2 million children found no correlation",
			"CDC, WHO, and major medical organizations confirm vaccine safety",
		},
		Sources: []string{"CDC", "WHO", "The Lancet (retraction)", "PubMed"},
	}},
	{"5g causes covid", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  99,
		Explanation: "COVID-19 is caused by the SARS-CoV-2 virus, not by radio waves. The virus spread to countries without 5G networks, and viruses cannot be transmitted via radio frequencies.",
		Evidence: []string{
			"COVID-19 spread to countries without 5G infrastructure",
			"Viruses require biological hosts and cannot travel on radio waves",
			"Radio waves are non-ionizing and cannot damage DNA",
		},
		Sources: []string{"WHO", "CDC", "IEEE", "Full Fact"},
	}},
	{"climate change is a hoax", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  97,
		Explanation: "97% of climate scientists agree that climate change is real and primarily caused by human activities. Evidence includes rising global temperatures, melting ice caps, and increasing CO2 levels.",
		Evidence: []string{
			"Global temperature increased 1.1°C since pre-industrial times",
			"CO2 levels at highest in 800,000 years",
			"Observable effects: melting glaciers, rising sea levels, extreme weather",
		},
		Sources: []string{"IPCC", "NASA", "NOAA", "Nature Climate Change"},
	}},
	{"moon landing was faked", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  99,
		Explanation: "The Apollo moon landings were real and verified by multiple independent sources including other countries.",
		Evidence: []string{
			"382 kg of moon rocks brought back and analyzed worldwide",
			"Lunar laser reflectors still used by scientists today",
			"Soviet Union confirmed landings (Cold War enemy)",
		},
		Sources: []string{"NASA", "Smithsonian", "Independent observatories"},
	}},
	{"microchips in vaccines", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  99,
		Explanation: "Vaccines do not contain microchips. Modern microchips require power sources and are far too large to fit through a vaccine needle.",
		Evidence: []string{
			"Vaccine ingredients are publicly listed and tested",
			"Microchips require power sources and are visible to naked eye",
		},
		Sources: []string{"Reuters Fact Check", "Snopes", "FDA"},
	}},
	{"covid vaccine changes dna", Fact{
		Verdict:     model.VerdictFalse,
		Confidence:  98,
		Explanation: "mRNA vaccines do not alter DNA. mRNA cannot integrate into DNA and breaks down quickly after producing the spike protein to trigger immune response.",
		Evidence: []string{
			"mRNA never enters the cell nucleus where DNA is stored",
			"mRNA degrades within days after vaccination",
		},
		Sources: []string{"CDC", "Nature Medicine", "Johns Hopkins", "MIT"},
	}},
	{"water boils at 100 degrees celsius", Fact{
		Verdict:     model.VerdictTrue,
		Confidence:  100,
		Explanation: "At sea level atmospheric pressure (1 atm), pure water boils at 100°C (212°F).",
		Evidence:    []string{"Fundamental physics constant", "Verified in countless experiments"},
		Sources:     []string{"Physics textbooks", "NIST"},
	}},
	{"earth orbits the sun", Fact{
		Verdict:     model.VerdictTrue,
		Confidence:  100,
		Explanation: "Earth orbits the Sun in an elliptical path, completing one orbit approximately every 365.25 days.",
		Evidence: []string{
			"Confirmed by centuries of astronomical observations",
			"Verified by space missions and satellites",
		},
		Sources: []string{"NASA", "Astronomical consensus"},
	}},
	{"smoking causes cancer", Fact{
		Verdict:     model.VerdictTrue,
		Confidence:  99,
		Explanation: "Smoking tobacco significantly increases the risk of lung cancer and other cancers. This has been proven through decades of research.",
		Evidence: []string{
			"Tobacco smoke contains 70+ known carcinogens",
			"Lung cancer rates 15-30x higher in smokers",
		},
		Sources: []string{"WHO", "American Cancer Society", "CDC", "NIH"},
	}},
	{"antibiotics don't work on viruses", Fact{
		Verdict:     model.VerdictTrue,
		Confidence:  99,
		Explanation: "Antibiotics only work against bacterial infections, not viral infections. Using antibiotics for viruses is ineffective and contributes to antibiotic resistance.",
		Evidence: []string{
			"Antibiotics target bacterial cell walls and processes",
			"Viruses lack these structures",
		},
		Sources: []string{"CDC", "WHO", "Medical consensus"},
	}},
	{"vaccines contain mercury", Fact{
		Verdict:     model.VerdictMisleading,
		Confidence:  75,
		Explanation: "Some vaccines previously contained thimerosal (ethylmercury) as a preservative, which is different from harmful methylmercury. It has been removed from most childhood vaccines since 2001 as a precaution, despite no evidence of harm.",
		Evidence: []string{
			"Thimerosal (ethylmercury) is different from methylmercury",
			"Studies found no link to autism or neurological problems",
		},
		Sources: []string{"FDA", "CDC", "WHO"},
	}},
	{"sugar makes kids hyperactive", Fact{
		Verdict:     model.VerdictMisleading,
		Confidence:  70,
		Explanation: "Multiple controlled studies have found no direct link between sugar consumption and hyperactivity. However, sugary foods are often consumed at exciting events, creating an association.",
		Evidence: []string{
			"Double-blind studies show no sugar-hyperactivity link",
			"Context (parties, holidays) may cause observed behavior",
		},
		Sources: []string{"Journal of the American Medical Association", "Yale Medicine"},
	}},
}
