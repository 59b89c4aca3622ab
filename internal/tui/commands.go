package tui

import (
	"context"

	"github.com/Veraticus/wastewise/internal/advisor"
	"github.com/Veraticus/wastewise/internal/marketplace"
	"github.com/Veraticus/wastewise/internal/model"
	"github.com/Veraticus/wastewise/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func loadSampleCmd(sess *session.Session, path string) tea.Cmd {
	return func() tea.Msg {
		sample, err := advisor.SampleFromFile(path)
		if err != nil {
			return sampleLoadedMsg{err: err}
		}
		if err := sess.ProvideSample(sample); err != nil {
			return sampleLoadedMsg{err: err}
		}
		return sampleLoadedMsg{name: sample.Name}
	}
}

func classifyCmd(ctx context.Context, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		result, err := sess.Classify(ctx)
		return classifiedMsg{result: result, err: err}
	}
}

func listCmd(ctx context.Context, market *marketplace.Market, result *model.ClassificationResult, req marketplace.ListRequest) tea.Cmd {
	return func() tea.Msg {
		listing, err := market.ListFromResult(ctx, result, req)
		return listedMsg{listing: listing, err: err}
	}
}
