package handlers

const (
	textStart         = "こんにちは！リマインドしたい内容を送ってください。"
	textPromptWhen    = "\"%s\" ですね！ いつ教えて欲しいですか？"
	textConfirmed     = "%s にリマインドしますね！"
	textPastDate      = "未来の日付で答えてください！いつ教えて欲しいですか？"
	textUnrecognized  = "すみません、わかりませんでした。正しい日付で教えてください。"
	textReminderFired = "リマインダー: %s"
	textListEmpty     = "リマインダーはありません。"
	textDeleted       = "削除しました。"
	textSnoozed       = "%s に延期しました！"

	btnDelete = "削除"

	dateLayout = "2006/01/02 15:04"
)

// Snooze offsets in minutes, same table the snooze picker always had.
var snoozeOptions = []struct {
	title   string
	minutes int
}{
	{"10分後", 10},
	{"1時間後", 60},
	{"2時間後", 120},
	{"3時間後", 180},
	{"明日の同じ時間", 1440},
	{"2日後", 2880},
	{"3日後", 4320},
	{"1週間後", 10080},
}
