package tetris

// Layer tells a renderer what a draw request belongs to.
type Layer uint8

const (
	LayerBoard Layer = iota
	LayerGhost
	LayerPiece
	LayerPreview
)

const (
	DepthBoard float32 = 0
	DepthGhost float32 = 1
	DepthPiece float32 = 2

	// GhostAlpha is the opacity of the landing preview.
	GhostAlpha float32 = 0.3

	previewX       = -5
	previewSpacing = 3
)

// DrawRequest asks a renderer to draw one sprite on the board grid.
// Sprite is the cell value minus one.
type DrawRequest struct {
	X, Y   int
	Sprite int
	Depth  float32
	Alpha  float32
	Layer  Layer
}

// Renderer consumes the draw requests of one frame.
type Renderer interface {
	Draw(reqs []DrawRequest)
}

func request(pt Point, c Cell, depth, alpha float32, layer Layer) DrawRequest {
	return DrawRequest{
		X:      pt.X,
		Y:      pt.Y,
		Sprite: int(c) - 1,
		Depth:  depth,
		Alpha:  alpha,
		Layer:  layer,
	}
}

// Draw appends the current frame to dst and returns it: board, ghost,
// active piece, then the preview queue.
func (s *Session) Draw(dst []DrawRequest) []DrawRequest {
	for pt, c := range s.board.Cells() {
		dst = append(dst, request(pt, c, DepthBoard, 1, LayerBoard))
	}

	ghost := *s.piece
	ghost.X, ghost.Y = s.piece.Ghost(s.board)
	for pt, c := range ghost.Cells() {
		dst = append(dst, request(pt, c, DepthGhost, GhostAlpha, LayerGhost))
	}

	for pt, c := range s.piece.Cells() {
		dst = append(dst, request(pt, c, DepthPiece, 1, LayerPiece))
	}

	top := s.board.Height() - 2
	for i, k := range s.queue.All() {
		preview := NewPiece(k, previewX, top-i*previewSpacing)
		for pt, c := range preview.Cells() {
			dst = append(dst, request(pt, c, DepthBoard, 1, LayerPreview))
		}
	}
	return dst
}
