package gdraw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jigcam/src/geom"
	"jigcam/src/input"
	"jigcam/src/puzzle"
	"jigcam/src/session"
	"jigcam/ui/gui/gbase"
	"jigcam/ui/gui/gctx"
	"jigcam/ui/gui/gframe"
	"jigcam/ui/gui/ghelper"
	"jigcam/ui/gui/ghelper/gdialog"
	"jigcam/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type acquired struct {
	src gframe.Source
	err error
}

// GUIPlayDrawer implements Scene: the puzzle board with its overlay.
type GUIPlayDrawer struct {
	sess    *session.Session
	overlay *Overlay
	tracker *input.Tracker

	// frame source
	opts     gframe.Options
	source   gframe.Source
	pending  chan acquired
	waiting  bool
	picking  bool
	failure  string
	cancel   context.CancelFunc
	captured bool // current press started on the menu panel

	viewW, viewH int
	lastTick     time.Time

	touchBuf []ebiten.TouchID
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext, opts gframe.Options) *GUIPlayDrawer {
	cfg := ctx.Config()
	diff := cfg.DifficultyPreset()
	overlay := NewOverlay(diff)
	pd := &GUIPlayDrawer{
		overlay: overlay,
		tracker: input.NewTracker(),
		pending: make(chan acquired, 1),
		opts:    opts,
		viewW:   cfg.WindowW,
		viewH:   cfg.WindowH,
	}
	pd.sess = session.New(overlay, session.Options{
		Difficulty: diff,
		Shrink:     cfg.Shrink,
		Seed:       cfg.Seed,
		Logger:     ctx.Logx.With("component", "session"),
	})
	pd.overlay.Layout(ctx, pd.viewW, pd.viewH)
	pd.acquire(ctx, opts)
	return pd
}

// Session exposes the underlying puzzle session.
func (pd *GUIPlayDrawer) Session() *session.Session {
	return pd.sess
}

// acquire opens a frame source in the background; Update picks up the result.
func (pd *GUIPlayDrawer) acquire(ctx *gctx.GUIGameContext, opts gframe.Options) {
	if pd.waiting {
		return
	}
	pd.waiting = true
	pd.opts = opts
	c, cancel := context.WithCancel(context.Background())
	pd.cancel = cancel
	ctx.Logx.Infof("opening frame source %q", opts.Kind)

	go func() {
		src, err := gframe.Open(c, opts)
		pd.pending <- acquired{src: src, err: err}
	}()
}

func (pd *GUIPlayDrawer) onAcquired(ctx *gctx.GUIGameContext, a acquired) {
	pd.waiting = false
	if a.err != nil {
		ctx.Logx.Errorf("error open frame source: %v", a.err)
		lang := ctx.AssetsWorker.Lang()
		if pd.source == nil {
			pd.failure = lang.Tf("status.failed", a.err)
		}
		title, msg := lang.T("alert.title"), lang.Tf("status.failed", a.err)
		go gdialog.Alert(title, msg)
		return
	}

	if pd.source != nil {
		if err := pd.source.Close(); err != nil {
			ctx.Logx.Warnf("error close frame source: %v", err)
		}
	}
	pd.source = a.src
	pd.failure = ""
	pd.source.Update(time.Now())
	fw, fh := pd.source.Size()
	if !pd.sess.Ready() {
		pd.sess.Attach(fw, fh, pd.viewW, pd.viewH)
	} else {
		pd.sess.SetFrameSize(fw, fh)
	}
}

// pickImage asks for an image file without blocking the game loop.
func (pd *GUIPlayDrawer) pickImage(ctx *gctx.GUIGameContext) {
	if pd.picking || pd.waiting {
		return
	}
	pd.picking = true
	title := ctx.AssetsWorker.Lang().T("dialog.pick")
	opts := pd.opts

	go func() {
		res, err := gdialog.OpenImage(title)
		if err != nil {
			pd.pending <- acquired{err: fmt.Errorf("error pick image: %w", err)}
			return
		}
		opts.Kind = gframe.KindImage
		opts.Path = res.Path
		opts.Data = res.Data
		src, err := gframe.Open(context.Background(), opts)
		pd.pending <- acquired{src: src, err: err}
	}()
}

// Update
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) error {
	select {
	case a := <-pd.pending:
		if pd.picking {
			pd.picking = false
			if errors.Is(a.err, gdialog.ErrCancelled) {
				ctx.Logx.Debug("image pick cancelled")
				break
			}
		}
		pd.onAcquired(ctx, a)
	default:
	}

	now := time.Now()
	dt := 1.0 / 60
	if !pd.lastTick.IsZero() {
		dt = now.Sub(pd.lastTick).Seconds()
	}
	pd.lastTick = now

	if err := pd.handleKeys(ctx); err != nil {
		return err
	}

	if pd.source != nil {
		pd.source.Update(now)
		pd.sess.SetFrameSize(pd.source.Size())
	}

	for _, ev := range pd.tracker.Update(pd.snapshot()) {
		pd.route(ctx, ev)
	}
	pd.overlay.Update(dt)
	return nil
}

func (pd *GUIPlayDrawer) handleKeys(ctx *gctx.GUIGameContext) error {
	cfg := ctx.Config()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return gbase.ErrExit
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ctx.Theme == gbase.DarkPalette {
			ctx.Theme = gbase.LightPalette
		} else {
			ctx.Theme = gbase.DarkPalette
		}
		cfg.Theme = ctx.Theme.String()
		pd.overlay.Refresh(ctx)
		ctx.SaveConfig()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		lang := ctx.AssetsWorker.Lang()
		next := glang.RU
		if lang.GetLang() == glang.RU {
			next = glang.EN
		}
		if err := lang.SetLang(next); err != nil {
			ctx.Logx.Errorf("error set language: %v", err)
			return nil
		}
		cfg.Lang = next.String()
		pd.overlay.Refresh(ctx)
		ctx.SaveConfig()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		pd.pickImage(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		cfg.Mirror = !cfg.Mirror
		ctx.SaveConfig()
	default:
	}
	return nil
}

// snapshot reads mouse and touch state once per tick.
func (pd *GUIPlayDrawer) snapshot() input.Snapshot {
	mx, my := ebiten.CursorPosition()
	s := input.Snapshot{
		Cursor:    geom.Pt(float64(mx), float64(my)),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	pd.touchBuf = ebiten.AppendTouchIDs(pd.touchBuf[:0])
	for _, id := range pd.touchBuf {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, input.Touch{ID: int(id), Pos: geom.Pt(float64(x), float64(y))})
	}
	pd.touchBuf = inpututil.AppendJustPressedTouchIDs(pd.touchBuf[:0])
	for _, id := range pd.touchBuf {
		s.JustPressed = append(s.JustPressed, int(id))
	}
	pd.touchBuf = inpututil.AppendJustReleasedTouchIDs(pd.touchBuf[:0])
	for _, id := range pd.touchBuf {
		s.JustReleased = append(s.JustReleased, int(id))
	}
	return s
}

// route sends a press that lands on the menu (and the rest of its gesture) to
// the overlay, everything else to the session.
func (pd *GUIPlayDrawer) route(ctx *gctx.GUIGameContext, ev puzzle.Event) {
	if ev.Kind == puzzle.EventPress && pd.overlay.Contains(ev.At) {
		pd.captured = true
	}

	if !pd.captured {
		if ev.Kind == puzzle.EventMove {
			pd.overlay.HandleEvent(ev) // hover
		}
		pd.sess.Dispatch(ev)
		return
	}

	act, d := pd.overlay.HandleEvent(ev)
	if ev.Kind == puzzle.EventRelease {
		pd.captured = false
	}
	switch act {
	case ActionDifficulty:
		pd.sess.SetDifficulty(d)
		ctx.Config().Difficulty = d.String()
		ctx.SaveConfig()
	case ActionStart:
		pd.sess.Restart()
	default:
	}
}

func (pd *GUIPlayDrawer) Resize(ctx *gctx.GUIGameContext, w, h int) {
	pd.viewW, pd.viewH = w, h
	pd.sess.Resize(w, h)
	pd.overlay.Layout(ctx, w, h)
}

// Draw
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	lang := ctx.AssetsWorker.Lang()
	switch {
	case pd.failure != "":
		DrawStatus(ctx, screen, pd.failure)
	case pd.source == nil || !pd.sess.Ready():
		DrawStatus(ctx, screen, lang.T("status.waiting"))
	default:
		surface := ghelper.NewSurface(screen, ctx.Theme.Bg, ctx.Theme.PieceStroke, ctx.Config().Mirror)
		pd.sess.Tick(surface, pd.source)
		pd.overlay.Draw(ctx, screen)
	}

	if ctx.Config().Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f  FPS: %0.2f  placed: %d/%d",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			pd.sess.Board().CorrectCount(), pd.sess.Board().Pieces.Len()))
	}
}

func (pd *GUIPlayDrawer) Close() error {
	if pd.cancel != nil {
		pd.cancel()
	}
	if pd.source != nil {
		return pd.source.Close()
	}
	return nil
}
