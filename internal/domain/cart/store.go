// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/pricing"
)

// ProductResolver resolves a product's variants and option groups
type ProductResolver interface {
	Resolve(ctx context.Context, productID string) (*catalog.ProductOptions, error)
}

// Store holds the cart lines of one shopping session in memory.
// Mutations and reads are serialized; TotalPrice works on a snapshot
// taken at call start so in-flight mutations cannot tear the view.
type Store struct {
	mu       sync.RWMutex
	lines    []Line
	resolver ProductResolver
}

// NewStore creates an empty cart store
func NewStore(resolver ProductResolver) *Store {
	return &Store{
		resolver: resolver,
	}
}

// Add appends a new line with a fresh id and returns it.
// Identical product+selection pairs are intentionally kept as separate lines.
func (s *Store) Add(product catalog.Product, sel pricing.Selection) (*Line, error) {
	if sel.Quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", pricing.ErrInvalidQuantity, sel.Quantity)
	}

	line := Line{
		ID:        newLineID(),
		Product:   product,
		Selection: sel,
		AddedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()

	return &line, nil
}

// UpdateQuantity replaces a line's quantity in place. A quantity of zero
// or less removes the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.Remove(lineID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Selection.Quantity = quantity
			return
		}
	}
}

// Remove deletes a line. No-op if the id is not present.
func (s *Store) Remove(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a confirmed checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// Lines returns a copy of the lines in insertion order
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

// Replace swaps the whole line collection, used when restoring a
// persisted session snapshot
func (s *Store) Replace(lines []Line) {
	s.mu.Lock()
	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
	s.mu.Unlock()
}

// TotalItemCount returns the sum of all line quantities
func (s *Store) TotalItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for i := range s.lines {
		total += s.lines[i].Selection.Quantity
	}
	return total
}

// TotalPrice resolves every line's product and sums the line totals.
// A line whose product fails to resolve contributes zero and the
// remaining lines are still counted; this keeps the live display usable
// when the backend has a partial outage.
func (s *Store) TotalPrice(ctx context.Context) (int64, error) {
	lines := s.Lines()

	var total int64
	for i := range lines {
		line := &lines[i]

		resolved, err := s.resolver.Resolve(ctx, line.Product.ID)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			logrus.WithFields(logrus.Fields{
				"line_id":    line.ID,
				"product_id": line.Product.ID,
			}).WithError(err).Warn("Skipping unresolvable cart line in total")
			continue
		}

		lineTotal, err := pricing.LineTotal(resolved, line.Selection)
		if err != nil {
			return 0, fmt.Errorf("failed to price line %s: %w", line.ID, err)
		}
		total += lineTotal
	}

	return total, nil
}

// newLineID generates a cart line id from the add timestamp and a random
// suffix, matching the `cart-<millis>-<rand>` format the backend expects
func newLineID() string {
	return fmt.Sprintf("cart-%d-%s", time.Now().UnixMilli(), randomSuffix(9))
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
