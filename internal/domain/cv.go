package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// NowISO returns the current UTC time in the ISO-8601 layout stored on
// every entity's createdAt/updatedAt. Lexicographic order of two values
// matches chronological order.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

type LanguageLevel string

const (
	LanguageBasic          LanguageLevel = "basic"
	LanguageConversational LanguageLevel = "conversational"
	LanguageFluent         LanguageLevel = "fluent"
	LanguageNative         LanguageLevel = "native"
)

type PersonalInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Summary   string `json:"summary"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree" validate:"required"`
	School      string `json:"school" validate:"required"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name" validate:"required"`
	Level SkillLevel `json:"level" validate:"required,oneof=beginner intermediate advanced expert"`
}

type Language struct {
	ID    string        `json:"id"`
	Name  string        `json:"name" validate:"required"`
	Level LanguageLevel `json:"level" validate:"required,oneof=basic conversational fluent native"`
}

// CV owns all of its nested entities; nested ids are unique only within
// the owning CV. Collection fields keep insertion order.
type CV struct {
	ID           string       `json:"id"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Languages    []Language   `json:"languages"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
}

// CVRepository persists the whole CV collection under a single storage
// key. Save is read-modify-write (replace-or-append by id); Delete is
// load-filter-save. Neither is atomic across concurrent writers.
type CVRepository interface {
	LoadAll(ctx context.Context) ([]CV, error)
	SaveAll(ctx context.Context, cvs []CV) error
	Save(ctx context.Context, cv CV) error
	Delete(ctx context.Context, id string) error
}

type CVUsecase interface {
	Load(ctx context.Context) ([]CV, error)
	List(ctx context.Context) []CV
	Get(ctx context.Context, id string) (CV, error)
	Create(ctx context.Context, info PersonalInfo) (CV, error)
	Update(ctx context.Context, cv CV) (CV, error)
	Delete(ctx context.Context, id string) error
	SetCurrent(ctx context.Context, id string) (CV, error)
	Current(ctx context.Context) (CV, error)

	UpdatePersonalInfo(ctx context.Context, info PersonalInfo) (CV, error)
	AddExperience(ctx context.Context, exp Experience) (CV, error)
	UpdateExperience(ctx context.Context, exp Experience) (CV, error)
	RemoveExperience(ctx context.Context, id string) (CV, error)
	AddEducation(ctx context.Context, edu Education) (CV, error)
	UpdateEducation(ctx context.Context, edu Education) (CV, error)
	RemoveEducation(ctx context.Context, id string) (CV, error)
	AddSkill(ctx context.Context, skill Skill) (CV, error)
	UpdateSkill(ctx context.Context, skill Skill) (CV, error)
	RemoveSkill(ctx context.Context, id string) (CV, error)
	AddLanguage(ctx context.Context, lang Language) (CV, error)
	UpdateLanguage(ctx context.Context, lang Language) (CV, error)
	RemoveLanguage(ctx context.Context, id string) (CV, error)
}
