package managers

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const verificationTokenBytes = 32

type VerificationMgr interface {
	Generate() (string, time.Time, error)
	Now() time.Time
}

// VerificationManager issues single-use email verification tokens.
type VerificationManager struct {
	lifetime time.Duration
	clock    func() time.Time
}

func NewVerificationManager(lifetime time.Duration) *VerificationManager {
	return &VerificationManager{lifetime: lifetime, clock: time.Now}
}

// Generate returns a random hex token and the time it stops being valid.
func (vm *VerificationManager) Generate() (string, time.Time, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}

	return hex.EncodeToString(buf), vm.Now().Add(vm.lifetime), nil
}

func (vm *VerificationManager) Now() time.Time {
	return vm.clock().UTC()
}
