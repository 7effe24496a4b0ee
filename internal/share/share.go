// Package share sends a result out of the app: the native share sheet when
// the host has one, the clipboard otherwise.
//
// Nothing here returns an error to the caller. Every outcome becomes a
// short-lived Notice for the user, and nothing is retried.
package share

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"timeworth/internal/handoff"
	"timeworth/internal/locale"
	"timeworth/internal/logger"
	"timeworth/internal/pay"
)

// NoticeTTL is how long a notice stays on screen.
const NoticeTTL = 2200 * time.Millisecond

const (
	MsgShared       = "공유 완료 ✅"
	MsgLinkCopied   = "링크 복사됨 ✅ 원하는 곳에 붙여넣기만 하면 돼!"
	MsgCopyFailed   = "복사 실패 😭 길게 눌러서 직접 복사해줘."
	MsgAcctCopied   = "계좌번호 복사됨 ✅ 은행앱에 붙여넣기만 하면 돼!"
	MsgAcctFailed   = "복사 실패 😭 계좌번호를 길게 눌러서 직접 복사해줘."
	MsgMemoCopied   = "후원 문구 복사됨 ✅ 송금 메모에 붙여넣으면 끝!"
	MsgMemoFailed   = "복사 실패 😭 메모에 'TimeWorth'만 적어줘도 돼."
	ShareTitle      = "TimeWorth"
	ShareTagline    = "Your time is not free."
	emptyShareStart = "내 시간은 얼마일까?"
)

var (
	ErrUnavailable = errors.New("share: native share unavailable")
	ErrCancelled   = errors.New("share: cancelled by user")
	ErrNoClipboard = errors.New("share: no clipboard")
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

// NativeSharer is a platform share sheet.
type NativeSharer interface {
	Available() bool
	Share(ctx context.Context, p Payload) error
}

type Payload struct {
	Title string
	Text  string
	URL   string
}

// ClipboardText is what gets copied when the share sheet is not used.
func (p Payload) ClipboardText() string {
	if p.URL == "" {
		return p.Text
	}
	return p.Text + "\n" + p.URL
}

// Notice is a transient message for the user.
type Notice struct {
	Message string
	OK      bool
	TTL     time.Duration
}

type Service struct {
	clipboard Clipboard
	sharer    NativeSharer
}

// NewService builds a Service. sharer may be nil when the host has no share
// sheet.
func NewService(cb Clipboard, sharer NativeSharer) *Service {
	return &Service{clipboard: cb, sharer: sharer}
}

// Share tries the share sheet first and falls back to copying the text and
// link when it is missing, fails or is dismissed.
func (s *Service) Share(ctx context.Context, p Payload) Notice {
	err := s.shareNative(ctx, p)
	if err == nil {
		return notice(MsgShared, true)
	}
	if !errors.Is(err, ErrUnavailable) {
		logger.FromContext(ctx).Debug("Native share did not complete, copying instead", "error", err)
	}
	return s.Copy(ctx, p.ClipboardText(), MsgLinkCopied, MsgCopyFailed)
}

// shareNative returns ErrUnavailable when the host has no share sheet.
func (s *Service) shareNative(ctx context.Context, p Payload) error {
	if s.sharer == nil || !s.sharer.Available() {
		return ErrUnavailable
	}
	return s.sharer.Share(ctx, p)
}

// Copy writes text to the clipboard and reports ok or fail.
func (s *Service) Copy(ctx context.Context, text, ok, fail string) Notice {
	if s.clipboard == nil {
		return notice(fail, false)
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		logger.FromContext(ctx).Warn("Clipboard write failed", "error", err)
		return notice(fail, false)
	}
	return notice(ok, true)
}

func notice(msg string, ok bool) Notice {
	return Notice{Message: msg, OK: ok, TTL: NoticeTTL}
}

// Text is the human share message for res.
func Text(res pay.Result) string {
	if !res.Pay.IsPositive() {
		return fmt.Sprintf("%s %s", emptyShareStart, ShareTagline)
	}
	return fmt.Sprintf("내 %s시간 %d분은 %s (시급 %s). %s",
		res.EffectiveHours, res.EffectiveMinutes, res.PayDisplay(), locale.Won(res.Wage), ShareTagline)
}

// NewPayload builds the share payload for res, linking to its card.
func NewPayload(base string, res pay.Result) Payload {
	return Payload{
		Title: ShareTitle,
		Text:  Text(res),
		URL:   handoff.CardURL(base, res),
	}
}
