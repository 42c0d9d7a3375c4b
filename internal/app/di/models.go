package di

import (
	authadapters "growth_journal/internal/feature/auth/adapters"
	guestbookadapters "growth_journal/internal/feature/guestbook/adapters"
	mediaadapters "growth_journal/internal/feature/media/adapters"
)

// Models returns every GORM model that AutoMigrate must create.
// Users come first because media and comments reference them by id.
func Models() []any {
	var models []any
	models = append(models, authadapters.Models()...)
	models = append(models, mediaadapters.Models()...)
	models = append(models, guestbookadapters.Models()...)
	return models
}
