package testcase

import (
	"os"

	"go.uber.org/zap"

	"procon/internal/domain"
)

// shift closes the hole left at index by moving t<j> to t<j-1> for
// j = index+1, index+2, ... It stops at the first j with neither file, so
// gaps that already existed above index are left alone.
func (s *Store) shift(op string, index int) error {
	for j := index + 1; ; j++ {
		from, to := domain.DefaultID(j), domain.DefaultID(j-1)

		moved := false
		moves := [][2]string{
			{domain.InputPath(s.dir, from), domain.InputPath(s.dir, to)},
			{domain.OutputPath(s.dir, from), domain.OutputPath(s.dir, to)},
		}
		for _, m := range moves {
			exists, err := fileExists(m[0])
			if err != nil {
				return newError(op, KindRead, m[0], err)
			}
			if !exists {
				continue
			}
			if err := os.Rename(m[0], m[1]); err != nil {
				return newError(op, KindRename, m[0], err)
			}
			moved = true
		}

		if !moved {
			return nil
		}
		s.logger.Debug("shifted testcase", zap.String("from", from), zap.String("to", to))
	}
}
