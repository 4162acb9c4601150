package catalog

import (
	"sync"
	"time"

	"github.com/samber/lo"

	"tarkov_market/internal/domain/entity"
)

// Snapshot is one fetch cycle's view of the item/barter/craft universe.
// It is immutable after construction; a new fetch builds a new snapshot.
type Snapshot struct {
	Flea      entity.FleaMarket
	FetchedAt time.Time

	items           map[string]*entity.Item
	barters         []entity.Barter
	crafts          []entity.Craft
	bartersByReward map[string][]*entity.Barter
	craftsByReward  map[string][]*entity.Craft
}

// NewSnapshot indexes the fetched records. Recipe lines referencing items
// missing from the catalog are dropped; a barter or craft whose required or
// reward list becomes empty is excluded entirely, since an unsatisfiable
// recipe is not a valid acquisition path.
func NewSnapshot(items []entity.Item, barters []entity.Barter, crafts []entity.Craft, flea entity.FleaMarket) *Snapshot {
	s := &Snapshot{
		Flea:            flea,
		FetchedAt:       time.Now(),
		items:           make(map[string]*entity.Item, len(items)),
		bartersByReward: make(map[string][]*entity.Barter),
		craftsByReward:  make(map[string][]*entity.Craft),
	}

	for i := range items {
		item := items[i]
		s.items[item.ID] = &item
	}

	for _, barter := range barters {
		barter.RequiredItems = s.knownLines(barter.RequiredItems)
		barter.RewardItems = s.knownLines(barter.RewardItems)

		if len(barter.RequiredItems) == 0 || len(barter.RewardItems) == 0 {
			continue
		}

		s.barters = append(s.barters, barter)
	}

	for _, craft := range crafts {
		craft.RequiredItems = s.knownLines(craft.RequiredItems)
		craft.RewardItems = s.knownLines(craft.RewardItems)

		if len(craft.RequiredItems) == 0 || len(craft.RewardItems) == 0 {
			continue
		}

		s.crafts = append(s.crafts, craft)
	}

	for i := range s.barters {
		for _, reward := range s.barters[i].RewardItems {
			s.bartersByReward[reward.ItemID] = append(s.bartersByReward[reward.ItemID], &s.barters[i])
		}
	}

	for i := range s.crafts {
		for _, reward := range s.crafts[i].RewardItems {
			s.craftsByReward[reward.ItemID] = append(s.craftsByReward[reward.ItemID], &s.crafts[i])
		}
	}

	return s
}

func (s *Snapshot) knownLines(lines []entity.RecipeItem) []entity.RecipeItem {
	return lo.Filter(lines, func(line entity.RecipeItem, _ int) bool {
		_, ok := s.items[line.ItemID]
		return ok
	})
}

func (s *Snapshot) Item(id string) (*entity.Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

func (s *Snapshot) Items() map[string]*entity.Item {
	return s.items
}

func (s *Snapshot) ItemCount() int {
	return len(s.items)
}

// BartersFor returns the barters rewarding itemID.
func (s *Snapshot) BartersFor(itemID string) []*entity.Barter {
	return s.bartersByReward[itemID]
}

// CraftsFor returns the crafts rewarding itemID.
func (s *Snapshot) CraftsFor(itemID string) []*entity.Craft {
	return s.craftsByReward[itemID]
}

// Service owns the current snapshot. The refresh worker swaps in a fresh
// one after every successful fetch; readers always see a consistent view.
type Service struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Swap(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

// Current returns the latest snapshot; ok is false before the first fetch
// completes.
func (s *Service) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.snap != nil
}
