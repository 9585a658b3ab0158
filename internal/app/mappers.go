package app

import (
	"eduquote/internal/domain"
)

// ProgramRow is the snake_case wire shape of a Program: the external contract
// shared by the HTTP API and the persistence layer. The translation below
// must stay bidirectionally lossless for every field.
type ProgramRow struct {
	ID                   string   `json:"id"`
	PortalType           string   `json:"portal_type"`
	Name                 string   `json:"name"`
	Location             string   `json:"location"`
	City                 string   `json:"city"`
	Country              string   `json:"country"`
	AgeRange             string   `json:"age_range"`
	Dates                string   `json:"dates"`
	Duration             string   `json:"duration"`
	AccommodationType    string   `json:"accommodation_type"`
	AccommodationDetails string   `json:"accommodation_details"`
	IncludedServices     []string `json:"included_services"`
	YoungLearnersGoals   []string `json:"young_learners_goals"`
	Description          string   `json:"description"`
	HeroImage            string   `json:"hero_image"`
	BannerImage          string   `json:"banner_image"`
	GalleryImages        []string `json:"gallery_images"`
	TimetableImages      []string `json:"timetable_images"`
	BasePriceNote        string   `json:"base_price_note"`
}

// MapToRow flattens a Program into its wire row. Nil list fields become empty
// slices so the row never serializes to JSON null.
func MapToRow(p domain.Program, portal domain.Portal) ProgramRow {
	return ProgramRow{
		ID:                   p.ID,
		PortalType:           portal.Key(),
		Name:                 p.Name,
		Location:             p.Location,
		City:                 p.City,
		Country:              p.Country,
		AgeRange:             p.AgeRange,
		Dates:                p.Dates,
		Duration:             p.Duration,
		AccommodationType:    string(p.AccommodationType),
		AccommodationDetails: p.AccommodationDetails,
		IncludedServices:     emptyIfNil(p.IncludedServices),
		YoungLearnersGoals:   emptyIfNil(p.YoungLearnersGoals),
		Description:          p.Description,
		HeroImage:            p.HeroImage,
		BannerImage:          p.BannerImage,
		GalleryImages:        emptyIfNil(p.GalleryImages),
		TimetableImages:      emptyIfNil(p.TimetableImages),
		BasePriceNote:        p.BasePriceNote,
	}
}

// MapFromRow rebuilds the in-memory Program from its wire row.
func MapFromRow(r ProgramRow) domain.Program {
	return domain.Program{
		ID:                   r.ID,
		Name:                 r.Name,
		Location:             r.Location,
		City:                 r.City,
		Country:              r.Country,
		AgeRange:             r.AgeRange,
		Dates:                r.Dates,
		Duration:             r.Duration,
		AccommodationType:    domain.AccommodationType(r.AccommodationType),
		AccommodationDetails: r.AccommodationDetails,
		IncludedServices:     emptyIfNil(r.IncludedServices),
		YoungLearnersGoals:   emptyIfNil(r.YoungLearnersGoals),
		Description:          r.Description,
		HeroImage:            r.HeroImage,
		BannerImage:          r.BannerImage,
		GalleryImages:        emptyIfNil(r.GalleryImages),
		TimetableImages:      emptyIfNil(r.TimetableImages),
		BasePriceNote:        r.BasePriceNote,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
