package engine

import (
	"math"
	"testing"
)

func TestAptitudeScoreUnknownDomain(t *testing.T) {
	p := StudentProfile{Aptitudes: Aptitudes{Quantitative: 10}}
	if got := AptitudeScore(p, "astrology"); got != NeutralScore {
		t.Errorf("unknown domain should score neutral %v, got %v", NeutralScore, got)
	}
	if got := InterestScore(p, "astrology"); got != NeutralScore {
		t.Errorf("unknown domain should score neutral %v, got %v", NeutralScore, got)
	}
}

func TestAptitudeScoreBounds(t *testing.T) {
	perfect := StudentProfile{Aptitudes: Aptitudes{
		Quantitative: 10, Logical: 10, Verbal: 10, Creative: 10, Technical: 10, Commerce: 10,
	}}
	zero := StudentProfile{}

	for domain := range domainAptitudes {
		hi := AptitudeScore(perfect, domain)
		if math.Abs(hi-1.0) > 1e-9 {
			t.Errorf("domain %s: perfect profile should score 1.0, got %v", domain, hi)
		}
		lo := AptitudeScore(zero, domain)
		if lo != 0 {
			t.Errorf("domain %s: zero profile should score 0, got %v", domain, lo)
		}
	}
}

func TestInterestScoreBounds(t *testing.T) {
	perfect := StudentProfile{Interests: Interests{
		Coding: 10, Design: 10, Math: 10, Science: 10, Business: 10, People: 10, Creative: 10,
	}}
	zero := StudentProfile{}

	for domain := range domainInterests {
		hi := InterestScore(perfect, domain)
		if math.Abs(hi-1.0) > 1e-9 {
			t.Errorf("domain %s: perfect profile should score 1.0, got %v", domain, hi)
		}
		lo := InterestScore(zero, domain)
		if lo != 0 {
			t.Errorf("domain %s: zero profile should score 0, got %v", domain, lo)
		}
	}
}

func TestTechnologyFavoursTechnicalAptitude(t *testing.T) {
	techie := StudentProfile{Aptitudes: Aptitudes{Technical: 10, Logical: 9, Quantitative: 9}}
	talker := StudentProfile{Aptitudes: Aptitudes{Verbal: 10, Creative: 9, Commerce: 9}}

	if AptitudeScore(techie, "technology") <= AptitudeScore(talker, "technology") {
		t.Error("technical profile should outscore verbal profile in the technology domain")
	}
	if AptitudeScore(talker, "business") <= AptitudeScore(techie, "business") {
		t.Error("verbal profile should outscore technical profile in the business domain")
	}
}

func TestKnownDomain(t *testing.T) {
	if !KnownDomain("technology") {
		t.Error("technology should be a known domain")
	}
	if KnownDomain("astrology") {
		t.Error("astrology should not be a known domain")
	}
}
