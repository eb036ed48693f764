// Package validation checks untrusted insert payloads against the domain
// schema's shape plus the extra field rules the API contract promises. It is
// pure: no storage access, no side effects, and every violated rule for a
// payload is reported in one aggregate result.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UserInsert is the validated shape for creating a user. Visibility may be
// omitted; the storage default is "legion".
type UserInsert struct {
	DiscordID  string  `json:"discordId" validate:"required"`
	Username   string  `json:"username" validate:"required,min=3,max=30"`
	AvatarURL  *string `json:"avatarUrl" validate:"omitempty,min=1"`
	Visibility string  `json:"visibility" validate:"omitempty,oneof=public legion friends private"`
}

// CharacterInsert is the validated shape for creating a character. Name is
// letters only, 2-20 characters. GearTier may be omitted (defaults to mid),
// ClearingScore may be omitted (defaults to 0).
type CharacterInsert struct {
	UserID        string `json:"userId" validate:"required,uuid"`
	Name          string `json:"name" validate:"required,min=2,max=20,alpha"`
	Class         string `json:"class" validate:"required,oneof=gladiator templar ranger assassin spiritmaster sorcerer cleric chanter gunner aethertech songweaver"`
	GearTier      string `json:"gearTier" validate:"omitempty,oneof=early mid end"`
	ClearingScore int    `json:"clearingScore" validate:"omitempty,gte=0"`
}

// DailyLogInsert is the validated shape for submitting a daily quest log.
// The struct deliberately has no ID or IsCompleted field: those are
// server-assigned, and payloads carrying them are rejected outright.
//
// Date is a pattern-only check. "2024-13-40" passes; calendar validity is
// not this layer's contract.
type DailyLogInsert struct {
	CharacterID string  `json:"characterId" validate:"required,uuid"`
	Date        string  `json:"date" validate:"required,datestr"`
	QuestIDs    []int64 `json:"questIds" validate:"required,min=1"`
	Notes       *string `json:"notes"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validate is constructed once at package load and is safe for concurrent
// use afterwards.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so error paths match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// datestr: literal YYYY-MM-DD, zero-padded, no calendar check.
	if err := v.RegisterValidation("datestr", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidateUserInsert parses and validates a user creation payload.
func ValidateUserInsert(raw []byte) (*UserInsert, error) {
	var in UserInsert
	if errs := decodeStrict(raw, &in); errs != nil {
		return nil, errs
	}
	if errs := checkStruct(&in); errs != nil {
		return nil, errs
	}
	return &in, nil
}

// ValidateCharacterInsert parses and validates a character creation payload.
func ValidateCharacterInsert(raw []byte) (*CharacterInsert, error) {
	var in CharacterInsert
	if errs := decodeStrict(raw, &in); errs != nil {
		return nil, errs
	}
	if errs := checkStruct(&in); errs != nil {
		return nil, errs
	}
	return &in, nil
}

// ValidateDailyLogInsert parses and validates a daily quest log payload.
func ValidateDailyLogInsert(raw []byte) (*DailyLogInsert, error) {
	var in DailyLogInsert
	if errs := decodeStrict(raw, &in); errs != nil {
		return nil, errs
	}
	if errs := checkStruct(&in); errs != nil {
		return nil, errs
	}
	return &in, nil
}

var unknownFieldPattern = regexp.MustCompile(`unknown field "([^"]+)"`)

// decodeStrict unmarshals raw JSON into dst, rejecting any key the insert
// shape does not declare. This is how server-assigned fields such as a daily
// log's id or isCompleted are kept out of client payloads.
func decodeStrict(raw []byte, dst any) Errors {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if m := unknownFieldPattern.FindStringSubmatch(err.Error()); m != nil {
			return Errors{{
				Field:   m[1],
				Rule:    "unknown_field",
				Message: fmt.Sprintf("field %q is not accepted by this payload", m[1]),
			}}
		}
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return Errors{{
				Field:   typeErr.Field,
				Rule:    "type",
				Message: fmt.Sprintf("expected %s", typeErr.Type),
			}}
		}
		return Errors{{Field: "", Rule: "json", Message: "payload is not valid JSON"}}
	}
	return nil
}

func checkStruct(in any) Errors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "", Rule: "internal", Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "alpha":
		return "must contain letters only"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datestr":
		return "must match YYYY-MM-DD"
	case "uuid":
		return "must be a valid UUID"
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
