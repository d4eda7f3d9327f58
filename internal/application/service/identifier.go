package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nilkanthplet/BP-1.0/internal/domain/entity"
	"github.com/nilkanthplet/BP-1.0/internal/domain/repository"
	"github.com/nilkanthplet/BP-1.0/pkg/apperror"
	"github.com/nilkanthplet/BP-1.0/pkg/utils"
)

// IdentifierClass selects the prefix and counter of a generated identifier
type IdentifierClass string

const (
	IdentifierBill    IdentifierClass = "bill"
	IdentifierReceipt IdentifierClass = "receipt"
)

var identifierPrefixes = map[IdentifierClass]string{
	IdentifierBill:    "B",
	IdentifierReceipt: "R",
}

// seed models: a fresh counter starts after the rows already stored
var identifierSeeds = map[IdentifierClass]interface{}{
	IdentifierBill:    &entity.Bill{},
	IdentifierReceipt: &entity.ReturnReceipt{},
}

// IdentifierGenerator produces date-scoped, human-readable identifiers
// like B-20260115-0007 from a persistent counter.
type IdentifierGenerator struct {
	seqRepo repository.SequenceRepository
	now     func() time.Time
}

// NewIdentifierGenerator creates a new identifier generator
func NewIdentifierGenerator(seqRepo repository.SequenceRepository) *IdentifierGenerator {
	return &IdentifierGenerator{seqRepo: seqRepo, now: time.Now}
}

// Next returns the next identifier for the class
func (g *IdentifierGenerator) Next(ctx context.Context, class IdentifierClass) (string, error) {
	prefix, ok := identifierPrefixes[class]
	if !ok {
		return "", fmt.Errorf("unknown identifier class %q", class)
	}

	seq, err := g.seqRepo.Next(ctx, string(class), identifierSeeds[class])
	if err != nil {
		return "", apperror.NewStorageError("Failed to generate identifier", err)
	}

	return utils.FormatIdentifier(prefix, g.now(), seq), nil
}
