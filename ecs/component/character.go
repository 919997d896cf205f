package component

import "github.com/milk9111/dogrun/character"

// CharacterComponent stores the player record. Systems that mutate it are
// handed the same pointer at construction.
var CharacterComponent = NewComponent[character.Character]()

// InputComponent stores the tick's input snapshot next to the character.
var InputComponent = NewComponent[character.Input]()
