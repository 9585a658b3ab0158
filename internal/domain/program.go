package domain

import (
	"errors"
	"fmt"
)

// AccommodationType is the closed set of accommodation options. The values
// are the display strings the catalog content uses (Turkish product copy).
type AccommodationType string

const (
	AccommodationResidence  AccommodationType = "Residence"
	AccommodationFamilyStay AccommodationType = "Aile Yanı"
	AccommodationHotel      AccommodationType = "Otel"
	AccommodationCampus     AccommodationType = "Kampüs"
)

// MaxTimetableImages caps how many timetable images a program may carry.
const MaxTimetableImages = 5

// durableIDMinLen distinguishes store-assigned uuid ids (36 chars) from the
// short factory ids ("1", "ind-1"). Anything longer is treated as persisted.
const durableIDMinLen = 20

// Program is one bookable offering. An empty ID means "not yet persisted";
// the store assigns a uuid on insert. Portal membership is extrinsic (a tag
// on the stored row), so the same shape serves all three portals.
type Program struct {
	ID                   string
	Name                 string
	Location             string
	City                 string
	Country              string
	AgeRange             string
	Dates                string
	Duration             string
	AccommodationType    AccommodationType
	AccommodationDetails string
	IncludedServices     []string
	YoungLearnersGoals   []string
	Description          string
	HeroImage            string
	BannerImage          string // optional, program-specific print banner
	GalleryImages        []string
	TimetableImages      []string
	BasePriceNote        string
}

// Persisted reports whether the id denotes a store-assigned durable identity.
func (p Program) Persisted() bool { return len(p.ID) > durableIDMinLen }

// Clone returns a deep copy; list fields never alias the receiver's.
func (p Program) Clone() Program {
	out := p
	out.IncludedServices = append([]string(nil), p.IncludedServices...)
	out.YoungLearnersGoals = append([]string(nil), p.YoungLearnersGoals...)
	out.GalleryImages = append([]string(nil), p.GalleryImages...)
	out.TimetableImages = append([]string(nil), p.TimetableImages...)
	return out
}

var ErrNotFound = errors.New("program not found")

// SaveErrorKind classifies persistence write failures so the surface can show
// a specific message.
type SaveErrorKind string

const (
	SaveDuplicate SaveErrorKind = "duplicate"
	SaveOversized SaveErrorKind = "oversized"
	SaveUnknown   SaveErrorKind = "unknown"
)

type SaveError struct {
	Kind SaveErrorKind
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save program (%s): %v", e.Kind, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
