package ui

import (
	"fmt"
	"strings"
)

// MaxRating is the number of stars in a rating.
const MaxRating = 5

// StarStates reports, for positions 1..5, whether the star is filled for
// rating r. Position i is filled iff i <= r, so a fractional average fills
// only its whole stars.
func StarStates(r float64) [MaxRating]bool {
	var out [MaxRating]bool
	for i := range out {
		out[i] = float64(i+1) <= r
	}
	return out
}

// RenderStars renders rating r as five stars, filled ones in the star color.
func RenderStars(r float64) string {
	var b strings.Builder
	for _, filled := range StarStates(r) {
		if filled {
			b.WriteString(Styles.StarFilled.Render("★"))
		} else {
			b.WriteString(Styles.StarEmpty.Render("☆"))
		}
	}
	return b.String()
}

// RatingLabel is the selector label for a rating: "1 Star", "2 Stars", ...
func RatingLabel(r int) string {
	if r == 1 {
		return "1 Star"
	}
	return fmt.Sprintf("%d Stars", r)
}
