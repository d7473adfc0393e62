// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alias is the predicate function for alias builders.
type Alias func(*sql.Selector)

// BotScore is the predicate function for botscore builders.
type BotScore func(*sql.Selector)

// Community is the predicate function for community builders.
type Community func(*sql.Selector)

// Gateway is the predicate function for gateway builders.
type Gateway func(*sql.Selector)

// Member is the predicate function for member builders.
type Member func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// TranslationRecord is the predicate function for translationrecord builders.
type TranslationRecord func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)
