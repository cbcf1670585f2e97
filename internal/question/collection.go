package question

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// Collection is an immutable, ordered set of validated records.
// It is safe for concurrent readers.
type Collection struct {
	records []Question
	byID    map[string]int
}

// NewCollection validates records and builds an indexed collection.
// The input slice is copied.
func NewCollection(records []Question) (*Collection, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	stored := make([]Question, len(records))
	copy(stored, records)
	byID := make(map[string]int, len(stored))
	for i, record := range stored {
		byID[record.ID] = i
	}
	return &Collection{records: stored, byID: byID}, nil
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns a copy of the records in storage order.
func (c *Collection) Records() []Question {
	if c == nil {
		return nil
	}
	out := make([]Question, len(c.records))
	copy(out, c.records)
	return out
}

// IDs returns record ids in storage order.
func (c *Collection) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.records))
	for _, record := range c.records {
		ids = append(ids, record.ID)
	}
	return ids
}

// Get looks up a record by id.
func (c *Collection) Get(id string) (Question, bool) {
	if c == nil {
		return Question{}, false
	}
	index, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.records[index], true
}

// Topics returns distinct topics in first-seen order.
func (c *Collection) Topics() []string {
	if c == nil {
		return nil
	}
	seen := map[string]struct{}{}
	topics := []string{}
	for _, record := range c.records {
		if _, ok := seen[record.Topic]; ok {
			continue
		}
		seen[record.Topic] = struct{}{}
		topics = append(topics, record.Topic)
	}
	return topics
}

// Filter returns the matching records in storage order.
func (c *Collection) Filter(filter Filter) []Question {
	if c == nil {
		return nil
	}
	out := []Question{}
	for _, record := range c.records {
		if filter.matches(record) {
			out = append(out, record)
		}
	}
	return out
}

// SortedByDifficulty returns the records ordered easy, medium, hard.
// Records of equal difficulty keep their storage order.
func (c *Collection) SortedByDifficulty() []Question {
	return SortByDifficulty(c.Records())
}

// SortByDifficulty stably orders records in place by difficulty rank and returns them.
func SortByDifficulty(records []Question) []Question {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Difficulty.Rank() < records[j].Difficulty.Rank()
	})
	return records
}

// Fingerprint returns a SHA-256 hex digest of the records' canonical JSON.
func (c *Collection) Fingerprint() string {
	records := c.Records()
	if records == nil {
		records = []Question{}
	}
	// Marshalling plain string fields cannot fail.
	data, _ := json.Marshal(records)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Equal reports whether two collections hold the same records in the same order.
func Equal(a, b *Collection) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.records[i] != b.records[i] {
			return false
		}
	}
	return true
}
