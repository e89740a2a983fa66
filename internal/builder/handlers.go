package builder

import (
	"fmt"

	"vprompt-web/internal/app"
	"vprompt-web/internal/server/handlers"
)

// AppHandlers は生成されたすべての HTTP ハンドラーを保持する構造体です。
// server パッケージはこの構造体を受け取ってルーティングを行います。
type AppHandlers struct {
	API *handlers.Handler
}

// BuildHandlers は各ハンドラーの依存関係をすべて組み立て、AppHandlers 構造体を返します。
func BuildHandlers(container *app.Container) (*AppHandlers, error) {
	if container.Engine == nil || container.Pipeline == nil {
		return nil, fmt.Errorf("engine と pipeline の初期化が必要です")
	}

	api := handlers.NewHandler(container.Config, container.Engine, container.Pipeline, container.Resolver)

	return &AppHandlers{
		API: api,
	}, nil
}
