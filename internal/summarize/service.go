package summarize

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kawagoe/shiplog/internal/digest"
	"github.com/kawagoe/shiplog/internal/git"
)

// Service turns a commit window into a validated four-category summary:
// build the instruction, call the client, parse the untrusted reply.
type Service struct {
	client Client
	log    *zap.SugaredLogger
}

func NewService(client Client, log *zap.SugaredLogger) *Service {
	return &Service{client: client, log: log}
}

// Summarize runs one summarization round trip for the given records and
// audience. Client errors and unparseable replies are terminal for the run.
func (s *Service) Summarize(ctx context.Context, records []git.CommitRecord, audience Audience) (digest.SummaryResult, error) {
	prompt := BuildPrompt(records, audience)
	s.log.Debugw("requesting summary", "commits", len(records), "audience", audience, "prompt_bytes", len(prompt))

	reply, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return digest.SummaryResult{}, fmt.Errorf("summarization request: %w", err)
	}
	s.log.Debugw("received summary reply", "reply_bytes", len(reply))

	return ParseResponse(reply)
}
