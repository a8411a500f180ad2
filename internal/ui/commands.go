package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/freesound/pkg/freesound"
)

// Messages

type resultsMsg struct {
	seq  int
	page int
	resp freesound.SearchResponse
	err  error
}

type soundMsg struct {
	seq   int
	id    int64
	sound freesound.Sound
	err   error
}

// Commands

func searchCmd(ctx context.Context, client freesound.Searcher, query *freesound.SearchQuery, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Search(ctx, query)
		return resultsMsg{seq: seq, page: 1, resp: resp, err: err}
	}
}

func fetchPageCmd(ctx context.Context, client freesound.Searcher, link string, page, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.FetchPage(ctx, link)
		return resultsMsg{seq: seq, page: page, resp: resp, err: err}
	}
}

func soundCmd(ctx context.Context, client freesound.Searcher, id int64, seq int) tea.Cmd {
	return func() tea.Msg {
		sound, err := client.GetSound(ctx, id, freesound.SoundQuery{})
		return soundMsg{seq: seq, id: id, sound: sound, err: err}
	}
}
