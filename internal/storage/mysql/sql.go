package mysql

// programCols is the shared column list; keep it in sync with scanProgram.
const programCols = `
  id, name, location, city, country, age_range, dates, duration,
  accommodation_type, accommodation_details, included_services,
  young_learners_goals, description, hero_image, banner_image,
  gallery_images, timetable_images, base_price_note`

const insertProgramSQL = `
INSERT INTO programs
  (id, portal_type, name, location, city, country, age_range, dates, duration,
   accommodation_type, accommodation_details, included_services,
   young_learners_goals, description, hero_image, banner_image,
   gallery_images, timetable_images, base_price_note)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateProgramSQL = `
UPDATE programs SET
  name                  = ?,
  location              = ?,
  city                  = ?,
  country               = ?,
  age_range             = ?,
  dates                 = ?,
  duration              = ?,
  accommodation_type    = ?,
  accommodation_details = ?,
  included_services     = ?,
  young_learners_goals  = ?,
  description           = ?,
  hero_image            = ?,
  banner_image          = ?,
  gallery_images        = ?,
  timetable_images      = ?,
  base_price_note       = ?,
  updated_at            = CURRENT_TIMESTAMP
WHERE id = ?
`

// seq preserves insertion order; fetch is ordered-by-insertion by contract.
const listByPortalSQL = `
SELECT` + programCols + `
FROM programs
WHERE portal_type = ?
ORDER BY seq
`

const listNamesSQL = `
SELECT name FROM programs WHERE portal_type = ? ORDER BY seq
`

const getProgramSQL = `
SELECT` + programCols + `
FROM programs
WHERE id = ?
`

const deleteProgramSQL = `DELETE FROM programs WHERE id = ?`

const deleteByPortalSQL = `DELETE FROM programs WHERE portal_type = ?`

// Settings is a single-row table; the fixed id keeps the upsert honest.
const getSettingsSQL = `
SELECT logo_url, banner_url FROM settings WHERE id = 1
`

const saveSettingsSQL = `
INSERT INTO settings (id, logo_url, banner_url)
VALUES (1, ?, ?)
ON DUPLICATE KEY UPDATE
  logo_url   = VALUES(logo_url),
  banner_url = VALUES(banner_url),
  updated_at = CURRENT_TIMESTAMP
`
