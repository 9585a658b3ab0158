package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"eduquote/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func marshalList(s []string) string {
	if s == nil {
		s = []string{}
	}
	b, _ := json.Marshal(s)
	return string(b)
}

// classifySave wraps a write failure into a SaveError with a specific kind so
// the surface can tell duplicates and oversized payloads apart.
func classifySave(err error) error {
	if err == nil {
		return nil
	}
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062: // ER_DUP_ENTRY
			return &domain.SaveError{Kind: domain.SaveDuplicate, Err: err}
		case 1153, 1118: // packet/row too large
			return &domain.SaveError{Kind: domain.SaveOversized, Err: err}
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "max_allowed_packet") {
		return &domain.SaveError{Kind: domain.SaveOversized, Err: err}
	}
	return &domain.SaveError{Kind: domain.SaveUnknown, Err: err}
}

func (r *Repo) Insert(ctx context.Context, p domain.Program, portal domain.Portal) (domain.Program, error) {
	p.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertProgramSQL,
		p.ID,
		portal.Key(),
		p.Name,
		p.Location,
		p.City,
		p.Country,
		p.AgeRange,
		p.Dates,
		p.Duration,
		string(p.AccommodationType),
		p.AccommodationDetails,
		marshalList(p.IncludedServices),
		marshalList(p.YoungLearnersGoals),
		p.Description,
		p.HeroImage,
		p.BannerImage,
		marshalList(p.GalleryImages),
		marshalList(p.TimetableImages),
		p.BasePriceNote,
	)
	if err != nil {
		return domain.Program{}, classifySave(err)
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, p domain.Program, portal domain.Portal) (domain.Program, error) {
	_ = portal // portal membership is fixed at insert time
	_, err := r.db.ExecContext(ctx, updateProgramSQL,
		p.Name,
		p.Location,
		p.City,
		p.Country,
		p.AgeRange,
		p.Dates,
		p.Duration,
		string(p.AccommodationType),
		p.AccommodationDetails,
		marshalList(p.IncludedServices),
		marshalList(p.YoungLearnersGoals),
		p.Description,
		p.HeroImage,
		p.BannerImage,
		marshalList(p.GalleryImages),
		marshalList(p.TimetableImages),
		p.BasePriceNote,
		p.ID,
	)
	if err != nil {
		return domain.Program{}, classifySave(err)
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteProgramSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteByPortal(ctx context.Context, portal domain.Portal) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteByPortalSQL, portal.Key())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repo) ListByPortal(ctx context.Context, portal domain.Portal) ([]domain.Program, error) {
	rows, err := r.db.QueryContext(ctx, listByPortalSQL, portal.Key())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListNames(ctx context.Context, portal domain.Portal) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listNamesSQL, portal.Key())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (domain.Program, error) {
	row := r.db.QueryRowContext(ctx, getProgramSQL, id)
	p, err := scanProgram(row)
	if err == sql.ErrNoRows {
		return domain.Program{}, domain.ErrNotFound
	}
	return p, err
}

type scanner interface{ Scan(dest ...any) error }

func scanProgram(s scanner) (domain.Program, error) {
	var (
		p          domain.Program
		accType    string
		accDetails sql.NullString
		services   []byte
		goals      []byte
		desc       sql.NullString
		hero       sql.NullString
		banner     sql.NullString
		gallery    []byte
		timetable  []byte
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Location,
		&p.City,
		&p.Country,
		&p.AgeRange,
		&p.Dates,
		&p.Duration,
		&accType,
		&accDetails,
		&services,
		&goals,
		&desc,
		&hero,
		&banner,
		&gallery,
		&timetable,
		&p.BasePriceNote,
	); err != nil {
		return domain.Program{}, err
	}
	p.AccommodationType = domain.AccommodationType(accType)
	p.AccommodationDetails = accDetails.String
	p.Description = desc.String
	p.HeroImage = hero.String
	p.BannerImage = banner.String
	p.IncludedServices = unmarshalList(services)
	p.YoungLearnersGoals = unmarshalList(goals)
	p.GalleryImages = unmarshalList(gallery)
	p.TimetableImages = unmarshalList(timetable)
	return p, nil
}

func unmarshalList(b []byte) []string {
	out := []string{}
	if len(b) > 0 {
		_ = json.Unmarshal(b, &out)
	}
	return out
}

func (r *Repo) GetSettings(ctx context.Context) (domain.Settings, error) {
	var logo, banner sql.NullString
	err := r.db.QueryRowContext(ctx, getSettingsSQL).Scan(&logo, &banner)
	if err == sql.ErrNoRows {
		return domain.Settings{}, nil // nothing saved yet
	}
	if err != nil {
		return domain.Settings{}, err
	}
	var s domain.Settings
	if logo.Valid {
		v := logo.String
		s.LogoURL = &v
	}
	if banner.Valid {
		v := banner.String
		s.BannerURL = &v
	}
	return s, nil
}

func (r *Repo) SaveSettings(ctx context.Context, s domain.Settings) error {
	_, err := r.db.ExecContext(ctx, saveSettingsSQL, valStr(s.LogoURL), valStr(s.BannerURL))
	return err
}
