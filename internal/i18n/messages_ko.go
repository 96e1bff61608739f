package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	message.SetString(lang, ScoreKey, "점수: %d")
	message.SetString(lang, LevelKey, "레벨: %d")
	message.SetString(lang, DistanceKey, "거리: %dm")
	message.SetString(lang, WarningsKey, "경고: %d/%d")
	message.SetString(lang, TimeLeftKey, "남은 시간: %d초")
	message.SetString(lang, PlayedForKey, "플레이 시간: %s")
	message.SetString(lang, StartKey, "시작하려면 Enter를 누르세요")
	message.SetString(lang, AgainKey, "다시 하려면 Enter, 메뉴는 B")

	message.SetString(lang, ReasonManualKey, "게임을 중지했습니다")
	message.SetString(lang, ReasonHazardKey, "게임 오버: 위험 아이템을 잡았습니다")
	message.SetString(lang, ReasonWarningsKey, "게임 오버: 경고 누적")
	message.SetString(lang, ReasonTimeoutKey, "시간 종료!")
}
