package handlers

import (
	"vprompt-web/internal/config"
	"vprompt-web/internal/domain"
	"vprompt-web/internal/engine"
	"vprompt-web/internal/locale"
	"vprompt-web/internal/pipeline"
)

// maxBodyBytes はリクエストボディの上限です。
const maxBodyBytes = 1 << 20

// Handler はセッション API の HTTP ハンドラーです。
type Handler struct {
	engine      *engine.Engine
	pipeline    pipeline.Pipeline
	resolver    *locale.Resolver
	defaultLang domain.Language
}

// NewHandler は指定された構成に基づいて新しいハンドラーを初期化します。
func NewHandler(
	cfg *config.Config,
	eng *engine.Engine,
	p pipeline.Pipeline,
	resolver *locale.Resolver,
) *Handler {
	return &Handler{
		engine:      eng,
		pipeline:    p,
		resolver:    resolver,
		defaultLang: cfg.Language(),
	}
}
