package sleeper

import (
	"sort"
	"strconv"
)

type teamMetadata struct {
	TeamName string `json:"team_name"`
}

// User is a Sleeper league member.
type User struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Username    string        `json:"username"`
	Metadata    *teamMetadata `json:"metadata"`
}

// Roster is one team slot in a league.
type Roster struct {
	RosterID int           `json:"roster_id"`
	OwnerID  string        `json:"owner_id"`
	Metadata *teamMetadata `json:"metadata"`
}

// Matchup is one roster's side of a weekly pairing.
type Matchup struct {
	RosterID  int     `json:"roster_id"`
	MatchupID *int    `json:"matchup_id"`
	Points    float64 `json:"points"`
}

// TeamInfo joins a roster with its owner.
type TeamInfo struct {
	RosterID    int    `json:"roster_id"`
	OwnerUserID string `json:"owner_user_id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	TeamName    string `json:"sleeper_team_name"`
}

// Key is the roster id as used in mapping files.
func (t TeamInfo) Key() string { return strconv.Itoa(t.RosterID) }

// JoinTeams pairs rosters with users, ordered by roster id. The display name
// falls back to the username, and the team name prefers roster metadata over
// user metadata.
func JoinTeams(users []User, rosters []Roster) []TeamInfo {
	byID := make(map[string]User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	out := make([]TeamInfo, 0, len(rosters))
	for _, r := range rosters {
		u := byID[r.OwnerID]
		info := TeamInfo{
			RosterID:    r.RosterID,
			OwnerUserID: r.OwnerID,
			DisplayName: u.DisplayName,
			Username:    u.Username,
		}
		if info.DisplayName == "" {
			info.DisplayName = u.Username
		}
		switch {
		case r.Metadata != nil && r.Metadata.TeamName != "":
			info.TeamName = r.Metadata.TeamName
		case u.Metadata != nil:
			info.TeamName = u.Metadata.TeamName
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RosterID < out[j].RosterID })
	return out
}

// MappingTemplate returns {roster_id: ""} for every team, ready to be filled
// in with canonical names.
func MappingTemplate(teams []TeamInfo) map[string]string {
	m := make(map[string]string, len(teams))
	for _, t := range teams {
		m[t.Key()] = ""
	}
	return m
}

// PairMatchups groups entries by matchup id, in first-seen order. Entries
// without a matchup id are ignored, as are groups that are not exactly two.
func PairMatchups(entries []Matchup) [][2]Matchup {
	groups := make(map[int][]Matchup)
	order := make([]int, 0)
	for _, m := range entries {
		if m.MatchupID == nil {
			continue
		}
		id := *m.MatchupID
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], m)
	}

	pairs := make([][2]Matchup, 0, len(order))
	for _, id := range order {
		if g := groups[id]; len(g) == 2 {
			pairs = append(pairs, [2]Matchup{g[0], g[1]})
		}
	}
	return pairs
}
