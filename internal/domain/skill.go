package domain

import "strings"

// Skill is one of the fixed trainable skills used to group leveling
// catalog entries.
type Skill string

// The 22 skills offered in the leveling catalog, panel display order.
const (
	SkillAttack       Skill = "Attack"
	SkillStrength     Skill = "Strength"
	SkillDefence      Skill = "Defence"
	SkillRanged       Skill = "Ranged"
	SkillPrayer       Skill = "Prayer"
	SkillMagic        Skill = "Magic"
	SkillHitpoints    Skill = "Hitpoints"
	SkillCooking      Skill = "Cooking"
	SkillWoodcutting  Skill = "Woodcutting"
	SkillFletching    Skill = "Fletching"
	SkillFishing      Skill = "Fishing"
	SkillFiremaking   Skill = "Firemaking"
	SkillCrafting     Skill = "Crafting"
	SkillSmithing     Skill = "Smithing"
	SkillMining       Skill = "Mining"
	SkillHerblore     Skill = "Herblore"
	SkillAgility      Skill = "Agility"
	SkillThieving     Skill = "Thieving"
	SkillRunecrafting Skill = "Runecrafting"
	SkillHunter       Skill = "Hunter"
	SkillConstruction Skill = "Construction"
	SkillSlayer       Skill = "Slayer"
)

// Skills lists every skill in panel display order.
var Skills = []Skill{
	SkillAttack, SkillStrength, SkillDefence, SkillRanged, SkillPrayer,
	SkillMagic, SkillHitpoints, SkillCooking, SkillWoodcutting,
	SkillFletching, SkillFishing, SkillFiremaking, SkillCrafting,
	SkillSmithing, SkillMining, SkillHerblore, SkillAgility, SkillThieving,
	SkillRunecrafting, SkillHunter, SkillConstruction, SkillSlayer,
}

// combatSkills are the skills trained by shared combat methods (bursting,
// chinning, crabs, NMZ). Entries for those methods are listed under every
// combat skill, not partitioned into one.
var combatSkills = map[Skill]bool{
	SkillAttack:    true,
	SkillStrength:  true,
	SkillDefence:   true,
	SkillRanged:    true,
	SkillMagic:     true,
	SkillHitpoints: true,
}

// IsCombat reports whether entries for shared combat-training methods
// should be included when listing this skill.
func (s Skill) IsCombat() bool {
	return combatSkills[s]
}

// ParseSkill resolves user-facing text to a Skill, case-insensitively.
func ParseSkill(text string) (Skill, bool) {
	for _, s := range Skills {
		if strings.EqualFold(string(s), text) {
			return s, true
		}
	}
	return "", false
}
