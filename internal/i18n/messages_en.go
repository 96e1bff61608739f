package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	for _, key := range []string{
		ScoreKey, LevelKey, DistanceKey, WarningsKey, TimeLeftKey, PlayedForKey,
		StartKey, AgainKey,
		ReasonManualKey, ReasonHazardKey, ReasonWarningsKey, ReasonTimeoutKey,
	} {
		message.SetString(lang, key, key)
	}
}
