package api

// Option applies a configuration option to the Server.
type Option func(*Server)

const defaultMaxUploadBytes = 20 << 20

// WithMaxUploadBytes caps image upload bodies.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}
