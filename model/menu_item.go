package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Choice is a numeric main menu selection.
type Choice int

const (
	ChoiceExit Choice = iota
	ChoiceSave
	ChoiceRestore
	ChoiceDelete
)

// MenuItem represents an item in the main menu.
type MenuItem struct {
	Choice Choice
	Title  string
}

// ComputedTitle returns the line shown for the item, e.g. "1. Save ...".
func (m MenuItem) ComputedTitle() string {
	return fmt.Sprintf("%d. %s", m.Choice, m.Title)
}

// MainMenu lists the main menu in display order.
var MainMenu = []MenuItem{
	{Choice: ChoiceSave, Title: "Save current config file (backup)"},
	{Choice: ChoiceRestore, Title: "Apply saved config file (overwrite)"},
	{Choice: ChoiceDelete, Title: "Delete saved backup and its folder"},
	{Choice: ChoiceExit, Title: "Exit"},
}

// ParseChoice turns one line of user input into a menu choice.
func ParseChoice(input string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrInvalidInput
	}
	for _, item := range MainMenu {
		if item.Choice == Choice(n) {
			return item.Choice, nil
		}
	}
	return 0, ErrInvalidChoice
}

// ConfirmToken is the distinct input that confirms a destructive action.
const ConfirmToken = "1"

// IsConfirmation reports whether input is an affirmative confirmation.
func IsConfirmation(input string) bool {
	return strings.TrimSpace(input) == ConfirmToken
}
