package repositories

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/workconnect/workconnect-core/internal/entities"
	"github.com/workconnect/workconnect-core/internal/logger"
	"github.com/workconnect/workconnect-core/internal/store"
)

type prefStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Preferences reads and writes the app_language key. The value is the raw
// two-letter code, not JSON.
type Preferences struct {
	store prefStore
}

func NewPreferences(kv prefStore) *Preferences {
	return &Preferences{store: kv}
}

// Language returns the stored UI language, falling back to English on a
// missing key, a read failure or an unknown code.
func (p *Preferences) Language(ctx context.Context) entities.Language {
	data, err := p.store.Get(ctx, store.KeyAppLanguage)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to load language: %v", err)
		return entities.LanguageEnglish
	}
	if data == nil {
		return entities.LanguageEnglish
	}

	language, err := entities.ToLanguage(string(data))
	if err != nil {
		log.Errorf("stored language is invalid: %v", err)
		return entities.LanguageEnglish
	}
	return language
}

func (p *Preferences) SetLanguage(ctx context.Context, language entities.Language) error {
	if _, err := entities.ToLanguage(string(language)); err != nil {
		return err
	}
	return p.store.Set(ctx, store.KeyAppLanguage, []byte(language))
}
