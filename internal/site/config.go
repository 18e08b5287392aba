// internal/site/config.go
//
// Helpers for fetching per-site theme settings from the `site_theme_setting`
// table.  Themes may expose tunables (accent color, logo path); operators
// override them per site, and templates read the resulting map.
package site

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SettingsBySite returns a map[key]value of theme setting overrides for one
// site_id.
func SettingsBySite(ctx context.Context, db *sqlx.DB, siteID uint64) (map[string]string, error) {
	const q = `
	    SELECT  ` + "`key`, value" + `
	    FROM    site_theme_setting
	    WHERE   site_id = ?`
	rows := make([]struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}, 0, 8) // small default cap

	if err := db.SelectContext(ctx, &rows, q, siteID); err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, r := range rows {
		settings[r.Key] = r.Value
	}
	return settings, nil
}
