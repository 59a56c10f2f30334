package dataoutput

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Buffer and cursor Test Suite ---

type BufferTestSuite struct {
	suite.Suite
}

func (s *BufferTestSuite) TestConstructors() {
	s.Assert().Equal(DefaultSize, NewBuffer(0).Cap())
	s.Assert().Equal(DefaultSize, NewBuffer(-3).Cap())
	s.Assert().Equal(10, NewBuffer(10).Cap())
	s.Assert().Zero(NewBuffer(10).Len())
}

func (s *BufferTestSuite) TestCursorAdvance() {
	out := NewDataOutput(nil)
	out.WriteUTF(tornado)
	assertHex(s.T(), "001B"+tornadoHex, out.Bytes())

	originalLength := out.Len()
	s.Require().NoError(out.AdvanceCursor(2))
	s.Assert().Equal(originalLength+2, out.Len(), "Correct length after advance")
}

func (s *BufferTestSuite) TestCursorNegativeAdvance() {
	out := NewDataOutput(nil)
	out.WriteUTF(tornado)
	assertHex(s.T(), "001B"+tornadoHex, out.Bytes())

	originalLength := out.Len()
	s.Require().NoError(out.AdvanceCursor(-2))
	s.Assert().Equal(originalLength-2, out.Len(), "Correct length after negative advance")
}

func (s *BufferTestSuite) TestInvalidCursor() {
	out := NewDataOutputSize(nil, 8)
	out.WriteUint32(1)

	err := out.AdvanceCursor(-5)
	s.Assert().ErrorIs(err, ErrInvalidCursor)
	s.Assert().Equal(4, out.Len())

	err = out.AdvanceCursor(out.Buffer().Cap() - 4 + 1)
	s.Assert().ErrorIs(err, ErrInvalidCursor)
	s.Assert().Equal(4, out.Len())

	// Rejected moves are not latched.
	s.Assert().NoError(out.Err())
	s.Require().NoError(out.AdvanceCursor(-4))
	s.Assert().Zero(out.Len())
	s.Require().NoError(out.AdvanceCursor(out.Buffer().Cap()))
	s.Assert().Equal(out.Buffer().Cap(), out.Len())
}

func (s *BufferTestSuite) TestPatchLengthField() {
	out := NewDataOutput(nil)
	out.WriteUint8(0xAA)

	start := out.Len()
	s.Require().NoError(out.AdvanceCursor(4))
	out.WriteASCII(tornado)
	end := out.Len()

	// Rewind to the reserved field, fill it in, then move back to the end.
	s.Require().NoError(out.AdvanceCursor(start - end))
	out.WriteInt32(int32(end - start - 4))
	s.Require().NoError(out.AdvanceCursor(end - out.Len()))

	s.Require().NoError(out.Err())
	assertHex(s.T(), "AA"+"0000001D"+"001B"+tornadoHex, out.Bytes())
}

func (s *BufferTestSuite) TestRollbackSpeculativeWrite() {
	out := NewDataOutput(nil)
	out.WriteUint16(0x0102)
	mark := out.Len()
	out.WriteUTFHuge(tornado)

	s.Require().NoError(out.AdvanceCursor(mark - out.Len()))
	out.WriteUint8(0x03)
	assertHex(s.T(), "010203", out.Bytes())
}

func (s *BufferTestSuite) TestViews() {
	b := NewBuffer(4)
	_, err := b.Write([]byte{1, 2})
	s.Require().NoError(err)

	view := b.Bytes()
	s.Assert().Equal(len(view), cap(view))
	_ = append(view, 9)
	s.Require().NoError(b.WriteByte(3))
	s.Assert().Equal([]byte{1, 2, 3}, b.Bytes())

	_, err = b.WriteString("four")
	s.Require().NoError(err)
	s.Assert().Equal([]byte{1, 2, 3, 'f', 'o', 'u', 'r'}, b.Bytes())
	s.Assert().Equal(b.Cap()-b.Len(), b.Available())
}

func (s *BufferTestSuite) TestEnsureCapacity() {
	s.T().Run("Negative", func(t *testing.T) {
		assert.ErrorIs(t, NewBuffer(4).EnsureCapacity(-1), ErrCapacity)
	})

	s.T().Run("GrowsGeometrically", func(t *testing.T) {
		b := NewBuffer(64)
		_, err := b.Write(make([]byte, 64))
		require.NoError(t, err)
		require.NoError(t, b.EnsureCapacity(1))
		assert.Equal(t, 128, b.Cap())
		assert.Equal(t, 64, b.Len())
	})

	s.T().Run("StopsAtLimit", func(t *testing.T) {
		b := NewBuffer(8)
		b.SetMaxCapacity(100)
		require.NoError(t, b.EnsureCapacity(90))
		assert.Equal(t, 100, b.Cap())
		_, err := b.Write(make([]byte, 100))
		require.NoError(t, err)
		err = b.WriteByte(1)
		assert.ErrorIs(t, err, ErrCapacity)
		assert.Equal(t, 100, b.Len())
	})
}

func (s *BufferTestSuite) TestResetClearsStorage() {
	b := NewBuffer(8)
	_, _ = b.Write([]byte{1, 2, 3})
	b.Reset()
	s.Assert().Zero(b.Len())
	s.Require().NoError(b.AdvanceCursor(3))
	s.Assert().Equal([]byte{0, 0, 0}, b.Bytes())
}

func (s *BufferTestSuite) TestInvariantsUnderRandomOperations() {
	r := rand.New(rand.NewPCG(1, 2))
	out := NewDataOutputSize(nil, 1)

	for i := 0; i < 2000; i++ {
		before := out.Len()
		switch r.IntN(4) {
		case 0:
			out.WriteUint8(uint8(i))
			s.Require().Equal(before+1, out.Len())
		case 1:
			out.WriteInt64(int64(i))
			s.Require().Equal(before+8, out.Len())
		case 2:
			delta := r.IntN(2*before+1) - before
			if err := out.AdvanceCursor(delta); err == nil {
				s.Require().Equal(before+delta, out.Len())
			} else {
				s.Require().Equal(before, out.Len())
			}
		case 3:
			delta := r.IntN(out.Buffer().Available() + 8)
			if err := out.AdvanceCursor(delta); err == nil {
				s.Require().Equal(before+delta, out.Len())
			} else {
				s.Require().ErrorIs(err, ErrInvalidCursor)
				s.Require().Equal(before, out.Len())
			}
		}
		s.Require().GreaterOrEqual(out.Len(), 0)
		s.Require().LessOrEqual(out.Len(), out.Buffer().Cap())
	}
	s.Require().NoError(out.Err())
}

// TestBuffer runs the BufferTestSuite.
func TestBuffer(t *testing.T) {
	suite.Run(t, new(BufferTestSuite))
}
