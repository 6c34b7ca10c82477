package rules

// Builtin returns the fixed substitution table used by subrc: the
// Japanese UI strings of the mobile frontend mapped to their English
// equivalents. Entry order is significant and must be preserved; see
// Table for the cascading semantics.
func Builtin() Table {
	return New(
		// Status and state strings
		Rule{"未同期", "Never synced"},
		Rule{"準備完了", "Ready"},
		Rule{"実行中", "Running"},
		Rule{"利用可能", "Available"},
		Rule{"エラー", "Error"},
		Rule{"成功", "Success"},
		Rule{"失敗", "Failed"},
		Rule{"警告", "Warning"},
		Rule{"完了", "Complete"},
		Rule{"読み込み中", "Loading"},

		// Relative time strings
		Rule{"今日", "Today"},
		Rule{"昨日", "Yesterday"},
		Rule{"日前", " days ago"},
		Rule{"時間前", " hours ago"},
		Rule{"分前", " minutes ago"},
		Rule{"週間前", " weeks ago"},
		Rule{"ヶ月前", " months ago"},
		Rule{"1minutes以内", "Less than 1 minute ago"},

		// UI elements
		Rule{"コンテナ管理", "Container Management"},
		Rule{"ダウンロード管理", "Download Manager"},
		Rule{"ゲーム追加", "Add Game"},
		Rule{"ゲーム詳細", "Game Details"},
		Rule{"設定", "Settings"},
		Rule{"ログイン", "Login"},
		Rule{"ログアウト", "Logout"},
		Rule{"同期", "Sync"},
		Rule{"認証", "Auth"},
		Rule{"保存", "Save"},
		Rule{"削除", "Delete"},
		Rule{"キャンセル", "Cancel"},
		Rule{"閉じる", "Close"},
		Rule{"確認", "Confirm"},
		Rule{"戻る", "Back"},
		Rule{"追加", "Add"},
		Rule{"編集", "Edit"},
		Rule{"更新", "Update"},
		Rule{"再試行", "Retry"},
		Rule{"検索", "Search"},
		Rule{"お気に入り", "Favorites"},
		Rule{"最近プレイしたゲーム", "Recently Played"},
		Rule{"インポートしたゲーム", "Imported Games"},
		Rule{"インポート", "Import"},
		Rule{"インストール", "Install"},
		Rule{"アンインストール", "Uninstall"},
		Rule{"起動", "Launch"},
		Rule{"振動", "Vibration"},
		Rule{"有効", "Enabled"},
		Rule{"無効", "Disabled"},
		Rule{"左スティック", "Left Stick"},
		Rule{"右スティック", "Right Stick"},
		Rule{"トリガー", "Trigger"},
		Rule{"テスト", "Test"},
		Rule{"最近プレイした", "Recently Played"},
		Rule{"お気に入りのゲーム", "Favorite Games"},
		Rule{"インポート済み", "Imported"},
		Rule{"免責事項", "Disclaimer"},
		Rule{"注意事項", "Notes"},
		Rule{"同意する", "I Agree"},
		Rule{"同意しない", "Disagree"},

		// Download manager
		Rule{"完了済みクリア", "Clear Completed"},
		Rule{"進行中", "In Progress"},
		Rule{"ダウンロード履歴なし", "No download history"},
		Rule{"一時停止", "Pause"},
		Rule{"再開", "Resume"},

		// Containers
		Rule{"コンテナ", "Container"},
		Rule{"コンテナがありません", "No containers"},
		Rule{"新しいコンテナを作成", "Create New Container"},
		Rule{"コンテナ名", "Container Name"},
		Rule{"コンテナ名を入力してください", "Enter container name"},
		Rule{"コンテナを削除", "Delete Container"},
		Rule{"この操作は取り消せません", "This action cannot be undone"},
		Rule{"作成", "Create"},
		Rule{"サイズ", "Size"},

		// Game details
		Rule{"ゲーム情報", "Game Info"},
		Rule{"プレイ時間", "Play Time"},
		Rule{"最終プレイ日時", "Last Played"},
		Rule{"ソース", "Source"},
		Rule{"ファイルパス", "File Paths"},
		Rule{"実行ファイル", "Executable"},
		Rule{"インストールパス", "Install Path"},
		Rule{"Steam情報", "Steam Info"},
		Rule{"ゲームを起動中", "Launching game"},
		Rule{"ゲームを起動できません", "Cannot launch game"},
		Rule{"直接起動", "Direct Launch"},
		Rule{"Steam経由で起動", "Launch via Steam"},
		Rule{"Steamクライアントを開く", "Open Steam Client"},
		Rule{"設定を開く", "Open Settings"},
		Rule{"未インストール", "Not Installed"},
		Rule{"未設定", "Not Set"},

		// Controller settings
		Rule{"コントローラー設定", "Controller Settings"},
		Rule{"コントローラーが検出されません", "No controller detected"},
		Rule{"デフォルトに戻す", "Reset to default"},
		Rule{"デッドゾーン", "Deadzone"},
		Rule{"テスト成功", "Test Successful"},

		// Error and status messages
		Rule{"不明なエラー", "Unknown error"},
		Rule{"検索エラー", "Search error"},
		Rule{"ゲームが既に存在します", "Game already exists"},
		Rule{"同期を開始しています", "Starting sync"},
		Rule{"同期中", "Syncing"},
		Rule{"API Keyを入力してください", "Please enter API Key"},
		Rule{"無効なAPI Keyです", "Invalid API Key"},
		Rule{"API Keyを保存しました", "API Key saved"},
		Rule{"Steam設定をクリアしました", "Steam Settings cleared"},
		Rule{"クリアに失敗しました", "Clear failed"},
		Rule{"Steam Clientがインストールされていません", "Steam Client is not installed"},
		Rule{"インストール状態の確認に失敗しました", "Failed to check installation status"},
		Rule{"予期しないエラーが発生しました", "Unexpected error occurred"},
		Rule{"Steam Clientを起動しました", "Steam Client launched"},
		Rule{"Steam Clientがアンインストールされました", "Steam Client has been uninstalled"},
		Rule{"アンインストールに失敗しました", "Uninstall failed"},
		Rule{"Winlator初期化", "Winlator initialization"},
		Rule{"Winlatorを初期化中", "Initializing Winlator"},
		Rule{"初期化に失敗しました", "Initialization failed"},
		Rule{"初期化中にエラーが発生しました", "Error occurred during initialization"},
		Rule{"コントローラー", "Controller"},
	)
}
