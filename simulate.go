package qasmparser

import (
	"math"
	"math/cmplx"
)

// StateVector holds dense state amplitudes over NumQubits qubits. Basis
// states are indexed with qubit 0 as the least significant bit.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns the |0...0> state.
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]complex128, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Simulate executes the first upTo instructions of the circuit (all of them
// when upTo is negative) and returns the resulting state.
func Simulate(c *Circuit, upTo int) *StateVector {
	numQubits := c.Width
	if numQubits < 1 {
		numQubits = 1
	}
	state := NewStateVector(numQubits)
	for i, in := range c.Instructions {
		if upTo >= 0 && i >= upTo {
			break
		}
		state.Apply(in)
	}
	return state
}

// Apply applies a single instruction to the state.
func (s *StateVector) Apply(in Instruction) {
	switch in.Kind {
	case H:
		s.applyH(in.Target)
	case S:
		s.applyS(in.Target)
	case X:
		s.applyX(in.Target)
	case Y:
		s.applyY(in.Target)
	case Z:
		s.applyZ(in.Target)
	case RX:
		s.applyRX(in.Target, in.Angle)
	case RY:
		s.applyRY(in.Target, in.Angle)
	case RZ:
		s.applyRZ(in.Target, in.Angle)
	case CX:
		s.applyCX(in.Control, in.Target)
	case SWAP:
		s.applySWAP(in.Control, in.Target)
	case CCX:
		s.applyCCX(in.Controls[0], in.Controls[1], in.Target)
	case RZZ:
		s.applyRZZ(in.Control, in.Target, in.Angle)
	}
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]complex128, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyS(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= 1i
		}
	}
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = 1i*s.Amplitudes[j], -1i*s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyZ(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applyRX(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	newAmps := make([]complex128, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = c*s.Amplitudes[i] + js*s.Amplitudes[j]
			newAmps[j] = js*s.Amplitudes[i] + c*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyRY(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	newAmps := make([]complex128, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = c*s.Amplitudes[i] - sn*s.Amplitudes[j]
			newAmps[j] = sn*s.Amplitudes[i] + c*s.Amplitudes[j]
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyRZ(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applySWAP(q1, q2 int) {
	n := len(s.Amplitudes)
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := 0; i < n; i++ {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i & ^bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCCX(control0, control1, target int) {
	n := len(s.Amplitudes)
	c0 := 1 << control0
	c1 := 1 << control1
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&c0 != 0 && i&c1 != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// applyRZZ applies exp(-i theta/2 Z⊗Z) on the qubit pair.
func (s *StateVector) applyRZZ(q1, q2 int, theta float64) {
	n := len(s.Amplitudes)
	bit1 := 1 << q1
	bit2 := 1 << q2
	odd := cmplx.Exp(complex(0, theta/2))
	even := cmplx.Exp(complex(0, -theta/2))
	for i := 0; i < n; i++ {
		if (i&bit1 != 0) != (i&bit2 != 0) {
			s.Amplitudes[i] *= odd
		} else {
			s.Amplitudes[i] *= even
		}
	}
}

// QubitProbability is the measurement distribution of one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// Probabilities returns the per-qubit measurement probabilities.
func (s *StateVector) Probabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	n := len(s.Amplitudes)

	for i := 0; i < n; i++ {
		prob := real(s.Amplitudes[i] * cmplx.Conj(s.Amplitudes[i]))
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}

	return probs
}
