package services

import (
	"fmt"
	"regexp"
	"strconv"

	"train-booking/models"
)

const (
	HighChance = "High Chance"
	LowChance  = "Low Chance"
)

var (
	waitlistPattern       = regexp.MustCompile(`(?i)\bwait\s*-?\s*list|\bwl\s*-?\s*\d+|\bwl\b`)
	waitlistNumberPattern = regexp.MustCompile(`(?i)(?:\bwait\s*-?\s*list|\bwl)\D{0,12}?(\d+)`)
	numberPattern         = regexp.MustCompile(`\d+`)
)

// EstimateWaitlist maps a waitlist position to a coarse confirmation chance.
func EstimateWaitlist(position int) models.WaitlistEstimate {
	var probability int
	switch {
	case position <= 10:
		probability = 90
	case position <= 20:
		probability = 75
	case position <= 40:
		probability = 55
	case position <= 60:
		probability = 35
	default:
		probability = 10
	}

	status := LowChance
	if probability >= 50 {
		status = HighChance
	}

	return models.WaitlistEstimate{
		Position:    position,
		Probability: fmt.Sprintf("%d%%", probability),
		Status:      status,
	}
}

// ParseWaitlistQuery reports whether text asks about a waitlist and, if so,
// the position it mentions. A number right after the keyword wins over train
// numbers or PNRs elsewhere in the text; otherwise the first number is used.
// ok is false when no number was found.
func ParseWaitlistQuery(text string) (position int, isWaitlist bool, ok bool) {
	if !waitlistPattern.MatchString(text) {
		return 0, false, false
	}
	raw := numberPattern.FindString(text)
	if m := waitlistNumberPattern.FindStringSubmatch(text); m != nil {
		raw = m[1]
	}
	if raw == "" {
		return 0, true, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, false
	}
	return n, true, true
}

// waitlistReply renders the scripted assistant answer for a waitlist question.
func waitlistReply(position int, found bool) (string, *models.WaitlistEstimate) {
	if !found {
		return "Please tell me your waitlist number (for example \"WL 15\") and I will estimate your confirmation chance.", nil
	}
	est := EstimateWaitlist(position)
	return fmt.Sprintf("For waitlist number %d the confirmation probability is about %s (%s).",
		est.Position, est.Probability, est.Status), &est
}
