package engine

import (
	"context"
	"log/slog"

	"vprompt-web/internal/domain"
	"vprompt-web/internal/locale"
)

// Generation は1回の完全生成の結果と、その生成に使った入力のスナップショットです。
type Generation struct {
	Output domain.GeneratedOutput
	Inputs domain.PromptInputs
}

// Submit はセッションの現在の入力から完全生成を行い、出力だけを返します。
func (e *Engine) Submit(ctx context.Context, sess *Session, lang domain.Language) (domain.GeneratedOutput, error) {
	gen, err := e.Generate(ctx, sess, lang)
	return gen.Output, err
}

// Generate はセッションの現在の入力から完全生成を行います。
//
// Loading への遷移時に前回の出力とエラーを消去し、成功時は出力を設定して履歴に記録、
// 失敗時はユーザー向けメッセージを現在のエラーに設定します。どの経路でも Loading は必ず解除されます。
// 同じセッションで生成が実行中の場合は ErrGenerationInFlight を返し、状態は変更しません。
// それ以外の失敗でも、返す Generation の Inputs には生成開始時の入力が入ります。
func (e *Engine) Generate(ctx context.Context, sess *Session, lang domain.Language) (Generation, error) {
	// 呼び出し元の切断で後始末が中断されないよう、キャンセルを切り離します。
	ctx = context.WithoutCancel(ctx)

	inputs, err := sess.beginGeneration()
	if err != nil {
		return Generation{}, err
	}

	finished := false
	defer func() {
		if !finished {
			sess.finishGeneration(nil, e.localizer.Resolve(lang, locale.KeyUnexpected, nil))
		}
	}()

	fail := func(err error) (Generation, error) {
		sess.finishGeneration(nil, e.Message(lang, err))
		finished = true
		return Generation{Inputs: inputs}, err
	}

	req, err := e.assembler.BuildGenerationRequest(inputs, lang)
	if err != nil {
		slog.WarnContext(ctx, "生成リクエストの組み立てに失敗しました", "session_id", sess.ID, "error", err)
		return fail(err)
	}

	doc, err := e.client.GenerateStructured(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "完全生成に失敗しました", "session_id", sess.ID, "error", err)
		return fail(err)
	}

	out := domain.NewGeneratedOutput(doc)
	sess.finishGeneration(&out, "")
	finished = true

	slog.InfoContext(ctx, "完全生成が完了しました", "session_id", sess.ID, "title", doc.Title, "scenes", len(doc.Scenes))
	return Generation{Output: out, Inputs: inputs}, nil
}
