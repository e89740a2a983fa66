package app

import (
	"log/slog"

	"vprompt-web/internal/config"
	"vprompt-web/internal/engine"
	"vprompt-web/internal/locale"
	"vprompt-web/internal/pipeline"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// Container はアプリケーションの依存関係（DIコンテナ）を保持します。
type Container struct {
	Config *config.Config

	// I/O (LOCALE_CATALOG 未設定時は nil)
	RemoteIO *RemoteIO

	// Business Logic
	Engine   *engine.Engine
	Pipeline pipeline.Pipeline
	Resolver *locale.Resolver
}

type RemoteIO struct {
	Factory remoteio.IOFactory
	Reader  remoteio.InputReader
}

// Close は、Container が保持するすべての外部接続リソースを安全に解放します。
func (c *Container) Close() {
	if c.RemoteIO != nil && c.RemoteIO.Factory != nil {
		if err := c.RemoteIO.Factory.Close(); err != nil {
			slog.Error("failed to close IOFactory", "error", err)
		}
	}
}
