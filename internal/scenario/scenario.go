// Package scenario loads embedded campaign-start data: the fixed province
// set, the political roster, and the opening stat values for a run.
package scenario

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	apperrors "github.com/louisbranch/vanguard.state/internal/platform/errors"
	"github.com/louisbranch/vanguard.state/internal/regime"
	"github.com/louisbranch/vanguard.state/internal/regime/province"
)

//go:embed data/velska.v1.json
var velskaJSON []byte

var (
	loadOnce      sync.Once
	loadedDefault *Scenario
	loadErr       error
)

type nationalJSON struct {
	Stability             int `json:"stability"`
	PopularSupport        int `json:"popular_support"`
	MilitaryLoyalty       int `json:"military_loyalty"`
	EliteLoyalty          int `json:"elite_loyalty"`
	Treasury              int `json:"treasury"`
	IndustrialOutput      int `json:"industrial_output"`
	FoodSupply            int `json:"food_supply"`
	InternationalStanding int `json:"international_standing"`
}

type personalJSON struct {
	Standing        int `json:"standing"`
	PatronFavor     int `json:"patron_favor"`
	RivalThreat     int `json:"rival_threat"`
	Network         int `json:"network"`
	CorruptionLevel int `json:"corruption_level"`
}

type governorJSON struct {
	Name            string `json:"name"`
	Loyalty         int    `json:"loyalty"`
	Competence      int    `json:"competence"`
	Corruption      int    `json:"corruption"`
	LocalPopularity int    `json:"local_popularity"`
}

type provinceJSON struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	Status           string        `json:"status"`
	PartyControl     int           `json:"party_control"`
	PopularLoyalty   int           `json:"popular_loyalty"`
	MilitaryPresence int           `json:"military_presence"`
	AutonomyDesire   int           `json:"autonomy_desire"`
	DistinctCulture  bool          `json:"distinct_culture"`
	DistinctLanguage bool          `json:"distinct_language"`
	Grievances       []string      `json:"grievances"`
	Governor         *governorJSON `json:"governor"`
}

type characterJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Rank        int    `json:"rank"`
	Faction     string `json:"faction"`
	Disposition int    `json:"disposition"`
}

type positionJSON struct {
	Title    string `json:"title"`
	Rank     int    `json:"rank"`
	FromTurn int    `json:"from_turn"`
}

type scenarioJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	National   nationalJSON    `json:"national"`
	Personal   personalJSON    `json:"personal"`
	Vars       map[string]int  `json:"vars"`
	Provinces  []provinceJSON  `json:"provinces"`
	Characters []characterJSON `json:"characters"`
	Positions  []positionJSON  `json:"positions"`
}

// Scenario is validated campaign-start data.
type Scenario struct {
	ID   string
	Name string

	National   regime.National
	Personal   regime.Personal
	Vars       map[regime.Var]int
	Provinces  []*province.Province
	Characters []*regime.Character
	Positions  []regime.PositionRecord
}

// Default returns the embedded default scenario, validating it on first use.
func Default() (*Scenario, error) {
	loadOnce.Do(func() {
		loadedDefault, loadErr = Parse(velskaJSON)
	})
	return loadedDefault, loadErr
}

// Parse decodes and validates scenario JSON.
func Parse(data []byte) (*Scenario, error) {
	var raw scenarioJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	if raw.ID == "" {
		return nil, apperrors.New(apperrors.CodeScenarioEmptyID, "scenario id is required")
	}

	sc := &Scenario{
		ID:   raw.ID,
		Name: raw.Name,
		National: regime.National{
			Stability:             raw.National.Stability,
			PopularSupport:        raw.National.PopularSupport,
			MilitaryLoyalty:       raw.National.MilitaryLoyalty,
			EliteLoyalty:          raw.National.EliteLoyalty,
			Treasury:              raw.National.Treasury,
			IndustrialOutput:      raw.National.IndustrialOutput,
			FoodSupply:            raw.National.FoodSupply,
			InternationalStanding: raw.National.InternationalStanding,
		},
		Personal: regime.Personal{
			Standing:        raw.Personal.Standing,
			PatronFavor:     raw.Personal.PatronFavor,
			RivalThreat:     raw.Personal.RivalThreat,
			Network:         raw.Personal.Network,
			CorruptionLevel: raw.Personal.CorruptionLevel,
		},
		Vars: make(map[regime.Var]int),
	}

	for key, value := range raw.Vars {
		v, ok := regime.ParseVar(key)
		if !ok {
			// Unknown scenario variables are content for the narrative
			// layer; the core carries only its closed set.
			continue
		}
		sc.Vars[v] = value
	}

	capitals := 0
	seen := make(map[string]bool)
	for _, pj := range raw.Provinces {
		if seen[pj.ID] {
			return nil, apperrors.WithMetadata(
				apperrors.CodeScenarioDuplicateProvince,
				fmt.Sprintf("duplicate province id %q", pj.ID),
				map[string]string{"ProvinceID": pj.ID},
			)
		}
		seen[pj.ID] = true

		category, ok := province.ParseCategory(pj.Category)
		if !ok {
			return nil, apperrors.WithMetadata(
				apperrors.CodeScenarioInvalidCategory,
				fmt.Sprintf("unknown province category %q", pj.Category),
				map[string]string{"Category": pj.Category},
			)
		}
		if category == province.CategoryCapital {
			capitals++
		}

		status, ok := province.ParseStatus(pj.Status)
		if !ok {
			return nil, apperrors.WithMetadata(
				apperrors.CodeScenarioInvalidStatus,
				fmt.Sprintf("unknown province status %q", pj.Status),
				map[string]string{"Status": pj.Status},
			)
		}

		p := &province.Province{
			ID:               pj.ID,
			Name:             pj.Name,
			Category:         category,
			Status:           status,
			PartyControl:     pj.PartyControl,
			PopularLoyalty:   pj.PopularLoyalty,
			MilitaryPresence: pj.MilitaryPresence,
			AutonomyDesire:   pj.AutonomyDesire,
			DistinctCulture:  pj.DistinctCulture,
			DistinctLanguage: pj.DistinctLanguage,
			Grievances:       pj.Grievances,
		}
		if pj.Governor != nil {
			p.Governor = &province.Governor{
				Name:            pj.Governor.Name,
				Loyalty:         pj.Governor.Loyalty,
				Competence:      pj.Governor.Competence,
				Corruption:      pj.Governor.Corruption,
				LocalPopularity: pj.Governor.LocalPopularity,
			}
		}
		sc.Provinces = append(sc.Provinces, p)
	}
	if capitals != 1 {
		return nil, apperrors.New(apperrors.CodeScenarioNoCapital, "scenario requires exactly one capital province")
	}

	for _, cj := range raw.Characters {
		faction, ok := regime.ParseFaction(cj.Faction)
		if !ok {
			return nil, apperrors.WithMetadata(
				apperrors.CodeScenarioInvalidCategory,
				fmt.Sprintf("unknown character faction %q", cj.Faction),
				map[string]string{"Faction": cj.Faction},
			)
		}
		sc.Characters = append(sc.Characters, &regime.Character{
			ID:          cj.ID,
			Name:        cj.Name,
			Title:       cj.Title,
			Rank:        cj.Rank,
			Faction:     faction,
			Disposition: cj.Disposition,
			Status:      regime.CharacterActive,
		})
	}

	for _, pj := range raw.Positions {
		sc.Positions = append(sc.Positions, regime.PositionRecord{
			Title:    pj.Title,
			Rank:     pj.Rank,
			FromTurn: pj.FromTurn,
		})
	}

	return sc, nil
}

// BuildState instantiates a fresh aggregate for one run.
//
// Every call copies the scenario records so that concurrent runs never share
// mutable state.
func (sc *Scenario) BuildState(runID string, seed int64) *regime.State {
	s := regime.NewState(runID, seed)
	s.National = sc.National
	s.Personal = sc.Personal
	for v, value := range sc.Vars {
		s.SetVar(v, value)
	}

	for _, p := range sc.Provinces {
		copied := *p
		copied.Grievances = append([]string(nil), p.Grievances...)
		if p.Governor != nil {
			gov := *p.Governor
			copied.Governor = &gov
		}
		s.Provinces = append(s.Provinces, &copied)
	}
	for _, c := range sc.Characters {
		copied := *c
		s.Characters = append(s.Characters, &copied)
	}
	s.Positions = append([]regime.PositionRecord(nil), sc.Positions...)

	return s
}
