package site

import "time"

// Record mirrors one row in the persistent `site` table.  For the theming
// layer the interesting columns are Theme and MobileTheme: which registered
// theme a host renders with, and the optional variant served to phone or
// tablet user agents.  The operational state is captured by two nullable
// timestamps:
//
//   - SuspendedAt – site is temporarily disabled (e.g., billing).
//   - DeletedAt   – site is permanently removed.
//
// Either timestamp being non-NULL prevents lookups from serving the site.
type Record struct {
	ID          uint64     `db:"id"`
	Host        string     `db:"host"`
	Theme       string     `db:"theme"`
	MobileTheme string     `db:"mobile_theme"`
	Title       string     `db:"title"`
	Locale      string     `db:"locale"`
	SuspendedAt *time.Time `db:"suspended_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
