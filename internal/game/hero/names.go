package hero

import "github.com/cory-johannsen/heroforge/internal/game/dice"

// firstNames and lastNames are the fixed display-name pools. Draws are
// independent, so names are not unique across heroes.
var firstNames = [...]string{
	"Aldric", "Brenna", "Cedric", "Dalia", "Eamon",
	"Fiora", "Gareth", "Hilda", "Ingmar", "Jora",
	"Kellan", "Lyra", "Magnus", "Nessa", "Orin",
	"Petra", "Quinlan", "Rhea", "Soren", "Tamsin",
	"Ulric", "Vera", "Wyatt", "Xanthe", "Yorick",
	"Zelda", "Ansel", "Briala", "Corvin", "Delphine",
	"Edric", "Freya", "Godric", "Helena", "Isolde",
	"Jarek", "Katriel", "Leif", "Mirelle", "Nikolai",
}

var lastNames = [...]string{
	"Ashveil", "Blackbriar", "Coldspring", "Dawnforge", "Emberfall",
	"Frostmere", "Grimshaw", "Hallowell", "Ironwood", "Jadeflame",
	"Kingsmere", "Larkspur", "Mossbane", "Nightriver", "Oakmantle",
	"Pyrewind", "Quillstone", "Ravenholt", "Stormwright", "Thornfield",
	"Umberfell", "Valemont", "Wolfsbane", "Yewbrook", "Zephyrine",
	"Ashdown", "Brightwater", "Cinderholm", "Duskwarden", "Everhart",
}

// GenerateName draws one first and one last name uniformly and
// independently from the fixed pools.
//
// Precondition: src must be non-nil.
// Postcondition: Returns "<first> <last>"; there are
// len(firstNames) * len(lastNames) possible combinations.
func GenerateName(src dice.Source) string {
	first := firstNames[src.Intn(len(firstNames))]
	last := lastNames[src.Intn(len(lastNames))]
	return first + " " + last
}
