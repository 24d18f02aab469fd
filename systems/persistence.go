package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	cfg "github.com/automoto/geoshooter/config"
	"github.com/quasilyte/gdata"
)

var (
	ErrUpgradeMaxed   = errors.New("upgrade already at max tier")
	ErrNotEnoughCoins = errors.New("not enough coins")
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// EnhanceID names one permanent upgrade bought between runs.
type EnhanceID int

const (
	EnhanceHull      EnhanceID = iota // extra starting lives
	EnhanceShield                     // starting shield points
	EnhanceMaxLives                   // lives cap
	EnhanceMaxShield                  // shield cap
)

func (id EnhanceID) String() string {
	switch id {
	case EnhanceHull:
		return "Hull"
	case EnhanceShield:
		return "Shield"
	case EnhanceMaxLives:
		return "MaxLives"
	case EnhanceMaxShield:
		return "MaxShield"
	}
	return "Unknown"
}

// SaveData is everything that outlives a run.
type SaveData struct {
	HighScore      int `json:"highScore"`
	TotalCoins     int `json:"totalCoins"`
	HullLevel      int `json:"hullLevel"`
	ShieldLevel    int `json:"shieldLevel"`
	MaxLivesLevel  int `json:"maxLivesLevel"`
	MaxShieldLevel int `json:"maxShieldLevel"`
}

// StartingStats turns the permanent tiers into the run's opening lives and
// shield with their caps.
func (s *SaveData) StartingStats() (lives, maxLives, shield, maxShield int) {
	u := cfg.Upgrade
	maxLives = u.BaseMaxLives + min(s.MaxLivesLevel, u.CapMaxTier)
	maxShield = u.BaseMaxShield + u.MaxShieldStep*min(s.MaxShieldLevel, u.CapMaxTier)
	lives = min(u.BaseLives+s.HullLevel, maxLives)
	shield = min(u.ShieldPerTier*s.ShieldLevel, maxShield)
	return lives, maxLives, shield, maxShield
}

func (s *SaveData) tier(id EnhanceID) (*int, int, error) {
	switch id {
	case EnhanceHull:
		return &s.HullLevel, cfg.Upgrade.StartMaxTier, nil
	case EnhanceShield:
		return &s.ShieldLevel, cfg.Upgrade.StartMaxTier, nil
	case EnhanceMaxLives:
		return &s.MaxLivesLevel, cfg.Upgrade.CapMaxTier, nil
	case EnhanceMaxShield:
		return &s.MaxShieldLevel, cfg.Upgrade.CapMaxTier, nil
	}
	return nil, 0, fmt.Errorf("%w: %d", ErrUnknownUpgrade, id)
}

// UpgradeCost is the coin price of the next tier of id.
func (s *SaveData) UpgradeCost(id EnhanceID) (int, error) {
	level, maxTier, err := s.tier(id)
	if err != nil {
		return 0, err
	}
	if *level >= maxTier {
		return 0, fmt.Errorf("%s: %w", id, ErrUpgradeMaxed)
	}
	if id == EnhanceMaxLives || id == EnhanceMaxShield {
		return cfg.Upgrade.CapCost, nil
	}
	return cfg.Upgrade.StartCosts[*level], nil
}

// PurchaseUpgrade spends coins on the next tier of id.
func (s *SaveData) PurchaseUpgrade(id EnhanceID) error {
	cost, err := s.UpgradeCost(id)
	if err != nil {
		return err
	}
	if s.TotalCoins < cost {
		return fmt.Errorf("%s costs %d, have %d: %w", id, cost, s.TotalCoins, ErrNotEnoughCoins)
	}
	level, _, _ := s.tier(id)
	s.TotalCoins -= cost
	*level++
	return nil
}

// RecordRun folds a finished run into the save.
func (s *SaveData) RecordRun(score, coins int) {
	s.TotalCoins += coins
	if score > s.HighScore {
		s.HighScore = score
	}
}

const saveKey = "save"

var gdataManager *gdata.Manager

// InitPersistence opens the save store. Without it loads return defaults and
// stores are no-ops.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "geoshooter",
	})
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSaveData reads the save, falling back to a zero SaveData when there is
// none or it cannot be read.
func LoadSaveData() *SaveData {
	save := &SaveData{}
	if gdataManager == nil {
		return save
	}

	data, err := gdataManager.LoadItem(saveKey)
	if err != nil {
		log.Printf("Warning: Could not load save data: %v", err)
		return save
	}
	if len(data) == 0 {
		return save
	}
	if err := json.Unmarshal(data, save); err != nil {
		log.Printf("Warning: Could not parse save data: %v", err)
		return &SaveData{}
	}
	return save
}

// StoreSaveData writes the save.
func StoreSaveData(s *SaveData) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	if err := gdataManager.SaveItem(saveKey, data); err != nil {
		log.Printf("Warning: Could not save data: %v", err)
		return fmt.Errorf("store save data: %w", err)
	}
	return nil
}
