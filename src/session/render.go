package session

import "jigcam/src/puzzle"

// GhostAlpha is the opacity of the reference frame under the pieces.
const GhostAlpha = 0.5

// Tick is one pass of the render loop. The game loop calls it once per display
// refresh; there is no termination other than the loop stopping.
func (s *Session) Tick(surface puzzle.Surface, frame puzzle.Frame) {
	if !s.attached {
		return
	}
	surface.Clear()

	prev := surface.Alpha()
	surface.SetAlpha(GhostAlpha)
	surface.DrawFrame(frame, puzzle.FrameRect(frame), s.board.Rect)
	surface.SetAlpha(prev)

	s.board.Draw(surface, frame)

	if text := s.ElapsedText(); text != "" {
		s.display.SetElapsed(text)
	}
}
