// Package models defines the entities tracked by lifenav and the pure rules that belong to them.
//
// Every entity is a plain struct identified by an opaque string id that the owning store
// assigns at creation time (see [NewID]). Entities are grouped by domain:
//
//   - [User]: the single local user created during onboarding
//   - [Goal] and its embedded [Milestone] list, plus [Task] which may point at a goal
//   - [MoodEntry]: one point in the mood log
//   - [SocialConnection]: a contact with a desired [ContactFrequency]
//   - [LearningResource], [LearningSession] and [LearningNote]
//   - [FinancialTransaction], [RecurringTransaction], [FinancialGoal], [Bill], [Budget], [BudgetCategory]
//   - [MotivationalContent]
//
// # Dates and money
//
// Calendar values without a time of day (due dates, transaction dates, budget ranges) use
// [Date], which encodes as "YYYY-MM-DD" in JSON and as a tagged full-date string in CBOR.
// Instants (creation times, session starts, last contact) use [time.Time].
// Monetary amounts use [github.com/shopspring/decimal.Decimal] so sums stay exact.
//
// # Updates
//
// Each mutable entity has a matching Patch type whose fields are pointers. A nil field
// leaves the corresponding value untouched, which gives the shallow partial merge the
// stores expose through their Update methods.
//
// # Derived fields
//
// Some fields are derived from others and are recomputed by the entity itself rather than
// trusted from callers: [Goal.Recompute] keeps progress in line with milestones and
// [FinancialGoal.Clamp] keeps the current amount within the target.
package models
