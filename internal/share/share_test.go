package share

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeworth/internal/pay"
)

type fakeClipboard struct {
	text string
	err  error
	n    int
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.n++
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeSharer struct {
	available bool
	err       error
	got       *Payload
	n         int
}

func (f *fakeSharer) Available() bool { return f.available }

func (f *fakeSharer) Share(_ context.Context, p Payload) error {
	f.n++
	f.got = &p
	return f.err
}

func samplePayload() Payload {
	res := pay.Compute(pay.Input{Wage: "15000", Hours: "2", Minutes: "30"}, pay.Options{})
	return NewPayload("https://timeworth.example", res)
}

func TestServiceShare(t *testing.T) {
	t.Run("Should use the native share sheet when available", func(t *testing.T) {
		cb := &fakeClipboard{}
		sh := &fakeSharer{available: true}
		n := NewService(cb, sh).Share(t.Context(), samplePayload())

		assert.True(t, n.OK)
		assert.Equal(t, MsgShared, n.Message)
		assert.Equal(t, NoticeTTL, n.TTL)
		require.NotNil(t, sh.got)
		assert.Equal(t, ShareTitle, sh.got.Title)
		assert.Zero(t, cb.n)
	})

	t.Run("Should fall back to clipboard when share is unavailable", func(t *testing.T) {
		cb := &fakeClipboard{}
		sh := &fakeSharer{available: false}
		p := samplePayload()
		n := NewService(cb, sh).Share(t.Context(), p)

		assert.True(t, n.OK)
		assert.Equal(t, MsgLinkCopied, n.Message)
		assert.Zero(t, sh.n)
		assert.Equal(t, p.Text+"\n"+p.URL, cb.text)
	})

	t.Run("Should fall back to clipboard when share is cancelled", func(t *testing.T) {
		cb := &fakeClipboard{}
		sh := &fakeSharer{available: true, err: ErrCancelled}
		n := NewService(cb, sh).Share(t.Context(), samplePayload())

		assert.True(t, n.OK)
		assert.Equal(t, 1, sh.n)
		assert.Equal(t, 1, cb.n)
	})

	t.Run("Should fall back to clipboard without a sharer", func(t *testing.T) {
		cb := &fakeClipboard{}
		n := NewService(cb, nil).Share(t.Context(), samplePayload())
		assert.True(t, n.OK)
		assert.NotEmpty(t, cb.text)
	})

	t.Run("Should report failure once without retrying", func(t *testing.T) {
		cb := &fakeClipboard{err: errors.New("permission denied")}
		sh := &fakeSharer{available: true, err: errors.New("boom")}
		n := NewService(cb, sh).Share(t.Context(), samplePayload())

		assert.False(t, n.OK)
		assert.Equal(t, MsgCopyFailed, n.Message)
		assert.Equal(t, 1, sh.n)
		assert.Equal(t, 1, cb.n)
	})
}

func TestShareNative(t *testing.T) {
	t.Run("Should report an unavailable share sheet", func(t *testing.T) {
		err := NewService(nil, nil).shareNative(t.Context(), samplePayload())
		assert.ErrorIs(t, err, ErrUnavailable)

		err = NewService(nil, &fakeSharer{available: false}).shareNative(t.Context(), samplePayload())
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("Should pass through the share sheet error", func(t *testing.T) {
		sh := &fakeSharer{available: true, err: ErrCancelled}
		err := NewService(nil, sh).shareNative(t.Context(), samplePayload())
		assert.ErrorIs(t, err, ErrCancelled)
	})
}

func TestServiceCopy(t *testing.T) {
	t.Run("Should fail gracefully with no clipboard", func(t *testing.T) {
		n := NewService(nil, nil).Copy(t.Context(), "x", "ok", "fail")
		assert.Equal(t, Notice{Message: "fail", OK: false, TTL: NoticeTTL}, n)
	})

	t.Run("Should copy the account number only", func(t *testing.T) {
		cb := &fakeClipboard{}
		d := Donation{Bank: "toss", Holder: "TimeWorth", Account: "1000-2000-3000"}
		n := NewService(cb, nil).CopyAccount(t.Context(), d)
		assert.True(t, n.OK)
		assert.Equal(t, MsgAcctCopied, n.Message)
		assert.Equal(t, "1000-2000-3000", cb.text)
	})

	t.Run("Should copy the transfer memo for the amount", func(t *testing.T) {
		cb := &fakeClipboard{}
		d := Donation{Bank: "toss", Holder: "TimeWorth", Account: "1000-2000-3000"}
		n := NewService(cb, nil).CopyMemo(t.Context(), d, 5000)
		assert.True(t, n.OK)
		assert.Equal(t, MsgMemoCopied, n.Message)
		assert.Equal(t, "TimeWorth 후원 ₩5,000 / 메모: TimeWorth", cb.text)
	})

	t.Run("Should report a failed memo copy", func(t *testing.T) {
		cb := &fakeClipboard{err: errors.New("no display")}
		n := NewService(cb, nil).CopyMemo(t.Context(), Donation{}, 3000)
		assert.False(t, n.OK)
		assert.Equal(t, MsgMemoFailed, n.Message)
	})
}

func TestText(t *testing.T) {
	t.Run("Should describe a positive result", func(t *testing.T) {
		res := pay.Compute(pay.Input{Wage: "15000", Hours: "2", Minutes: "30"}, pay.Options{})
		assert.Equal(t, "내 2시간 30분은 ₩37,500 (시급 ₩15,000). Your time is not free.", Text(res))
	})

	t.Run("Should fall back to a question for empty results", func(t *testing.T) {
		assert.Equal(t, "내 시간은 얼마일까? Your time is not free.", Text(pay.Result{}))
	})

	t.Run("Should link the payload to the card", func(t *testing.T) {
		p := samplePayload()
		assert.Equal(t, "https://timeworth.example/card?h=2&m=30&pay=37500&wage=15000", p.URL)
	})
}

func TestDonation(t *testing.T) {
	d := Donation{Bank: "toss", Holder: "TimeWorth", Account: "1000-2000-3000"}

	t.Run("Should render the account line", func(t *testing.T) {
		assert.Equal(t, "(toss) 1000-2000-3000 (TimeWorth)", d.AccountLine())
	})

	t.Run("Should render the memo with the amount", func(t *testing.T) {
		assert.Equal(t, "TimeWorth 후원 ₩5,000 / 메모: TimeWorth", d.Memo(5000))
	})

	t.Run("Should only select preset amounts", func(t *testing.T) {
		assert.Equal(t, int64(1000), SelectAmount(1000))
		assert.Equal(t, DefaultAmount, SelectAmount(0))
		assert.Equal(t, DefaultAmount, SelectAmount(4242))
	})
}
