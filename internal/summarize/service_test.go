package summarize

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kawagoe/shiplog/internal/digest"
	"github.com/kawagoe/shiplog/internal/git"
)

func TestService_Summarize(t *testing.T) {
	mock := &MockClient{Reply: "Sure!\n" + `{"features":["CSV export added"],"fixes":["Login loop fixed"]}`}
	service := NewService(mock, zap.NewNop().Sugar())

	records := []git.CommitRecord{
		{Hash: "abc1234", Date: "2024-01-05T10:00:00Z", Author: "Alice", Message: "Add CSV export"},
	}

	sum, err := service.Summarize(context.Background(), records, AudienceCX)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if !reflect.DeepEqual(sum.Features, []string{"CSV export added"}) {
		t.Fatalf("Features = %#v", sum.Features)
	}
	if !strings.Contains(mock.LastPrompt, "abc1234") {
		t.Fatal("prompt was not built from the records")
	}
	if !strings.Contains(mock.LastPrompt, AudienceCX.Framing()) {
		t.Fatal("prompt missing the cx framing")
	}
}

func TestService_ClientErrorPropagates(t *testing.T) {
	mock := &MockClient{Error: ErrRateLimited}
	service := NewService(mock, zap.NewNop().Sugar())

	_, err := service.Summarize(context.Background(), nil, AudienceGeneral)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, expected ErrRateLimited to propagate", err)
	}
}

func TestService_UnparseableReplyPropagates(t *testing.T) {
	mock := &MockClient{Reply: "I had trouble with that request."}
	service := NewService(mock, zap.NewNop().Sugar())

	_, err := service.Summarize(context.Background(), nil, AudienceGeneral)
	if !errors.Is(err, ErrUnparseableResponse) {
		t.Fatalf("err = %v, expected ErrUnparseableResponse", err)
	}
}

// End-to-end over the core pipeline: a blob with three valid records, one
// truncated record and a trailing separator yields three records, and the
// assembled digest always has four sections even when the service supplies
// only one category.
func TestPipeline_BlobToDigest(t *testing.T) {
	blob := strings.Join([]string{
		"h1\x1f2024-01-20T10:00:00Z\x1fAlice\x1fAdd export",
		"h2\x1f2024-01-10T10:00:00Z\x1fBob\x1fFix crash\x1fdetails here",
		"h3\x1f2024-01-05T10:00:00Z\x1fCarol\x1fTune cache",
		"h4\x1f2024-01-04T10:00:00Z", // truncated
	}, "\x1e") + "\x1e\n"

	records := git.ParseLog(blob, git.RecordSeparator, git.FieldSeparator)
	if len(records) != 3 {
		t.Fatalf("records = %d, expected 3", len(records))
	}

	dateRange, err := digest.ReduceDateRange(records, time.Now())
	if err != nil {
		t.Fatalf("ReduceDateRange: %v", err)
	}
	if dateRange.Start != "2024-01-05" || dateRange.End != "2024-01-20" {
		t.Fatalf("range = %+v", dateRange)
	}

	mock := &MockClient{Reply: `{"fixes":["Crash on export fixed"]}`}
	service := NewService(mock, zap.NewNop().Sugar())

	sum, err := service.Summarize(context.Background(), records, AudienceGeneral)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	d := digest.Assemble(dateRange, sum)
	if len(d.Sections) != 4 {
		t.Fatalf("sections = %d, expected 4", len(d.Sections))
	}
	if len(d.Sections[1].Items) != 1 {
		t.Fatalf("fixes = %#v", d.Sections[1])
	}
}
