package app

// Command はアプリケーションの起動モードを表す。
type Command string

const (
	// CommandBatch はパイプラインを1回実行して終了することを示す。
	CommandBatch Command = "batch"
	// CommandWorker はティッカー駆動でパイプラインを定期実行することを示す。
	CommandWorker Command = "worker"
	// CommandServe は運用HTTPサーバーモードで起動することを示す。
	CommandServe Command = "serve"
	// CommandMigrate はデータベースマイグレーションを実行することを示す。
	CommandMigrate Command = "migrate"
	// CommandHealthcheck はヘルスチェックを実行することを示す。
	// distroless環境でのDockerヘルスチェック用。
	CommandHealthcheck Command = "healthcheck"
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandBatchを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandBatch
	}

	switch args[0] {
	case "batch":
		return CommandBatch
	case "worker":
		return CommandWorker
	case "serve":
		return CommandServe
	case "migrate":
		return CommandMigrate
	case "healthcheck":
		return CommandHealthcheck
	default:
		return CommandBatch
	}
}
