// Package auth covers credentials: signed session tokens, password hashing and
// the profile defaults derived at registration.
package auth

import (
	"github.com/carson-networks/prefin/internal/apperr"
)

// Gender is the enumerated profile gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

const (
	AvatarBoy     = "https://avatar.iran.liara.run/public/boy"
	AvatarGirl    = "https://avatar.iran.liara.run/public/girl"
	AvatarDefault = "https://avatar.iran.liara.run/public"
)

// ParseGender validates a gender. The empty string means unspecified and maps
// to GenderOther.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale, GenderOther:
		return g, nil
	case "":
		return GenderOther, nil
	}
	return "", apperr.Validation("gender must be one of male, female, other")
}

// AvatarForGender returns the default avatar URL for g.
func AvatarForGender(g Gender) string {
	switch g {
	case GenderMale:
		return AvatarBoy
	case GenderFemale:
		return AvatarGirl
	default:
		return AvatarDefault
	}
}
