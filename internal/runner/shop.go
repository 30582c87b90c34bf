package runner

// ItemID identifies a shop item.
type ItemID string

const (
	ItemDoubleJump ItemID = "DOUBLE_JUMP"
	ItemMaxLife    ItemID = "MAX_LIFE"
	ItemHeal       ItemID = "HEAL"
	ItemImmortal   ItemID = "IMMORTAL"
)

// Effect is what buying an item does to the run.
type Effect int

const (
	EffectDoubleJump Effect = iota // Unlock a second jump
	EffectMaxLife                  // +1 max life and heal one
	EffectHeal                     // Heal one, capped at max
	EffectImmortality              // Unlock the firewall shield
)

// ShopItem is one entry of the upgrade catalog.
type ShopItem struct {
	ID          ItemID
	Name        string
	Description string
	Cost        int
	OneTime     bool
	Effect      Effect
}

var catalog = [...]ShopItem{
	{
		ID:          ItemDoubleJump,
		Name:        "MULTI-THREADING",
		Description: "Enables double jump. Execute parallel movements.",
		Cost:        1000,
		OneTime:     true,
		Effect:      EffectDoubleJump,
	},
	{
		ID:          ItemMaxLife,
		Name:        "REDUNDANCY",
		Description: "Adds a permanent health node and repairs damage.",
		Cost:        1500,
		Effect:      EffectMaxLife,
	},
	{
		ID:          ItemHeal,
		Name:        "DEBUG PROTOCOL",
		Description: "Restores 1 Health Node instantly.",
		Cost:        1000,
		Effect:      EffectHeal,
	},
	{
		ID:          ItemImmortal,
		Name:        "FIREWALL",
		Description: "Unlock Ability: Press Space for 5s invulnerability.",
		Cost:        3000,
		OneTime:     true,
		Effect:      EffectImmortality,
	},
}

// Catalog returns a copy of the upgrade catalog in display order.
func Catalog() []ShopItem {
	items := make([]ShopItem, len(catalog))
	copy(items, catalog[:])
	return items
}

// LookupItem finds a catalog entry by ID.
func LookupItem(id ItemID) (ShopItem, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}

// RandomSource is the subset of *rand.Rand the shop needs.
type RandomSource interface {
	Intn(n int) int
}

// SampleOffers draws up to n distinct items from the catalog, skipping any
// item for which exclude returns true. It runs a partial Fisher-Yates shuffle
// over the filtered pool, so every subset is equally likely.
func SampleOffers(rng RandomSource, n int, exclude func(ItemID) bool) []ShopItem {
	pool := make([]ShopItem, 0, len(catalog))
	for _, item := range catalog {
		if exclude != nil && exclude(item.ID) {
			continue
		}
		pool = append(pool, item)
	}

	n = max(0, min(n, len(pool)))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
