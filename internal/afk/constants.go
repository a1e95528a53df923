package afk

import (
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Duration limits in whole hours
const (
	MinDurationHours = 1
	MaxDurationHours = 12
)

// tierCaps is the longest session each membership tier may start
var tierCaps = map[domain.MembershipTier]int{
	domain.MembershipFree:    6,
	domain.MembershipPremium: 12,
}

// experienceRates is the experience earned per completed hour in each realm
var experienceRates = map[domain.Realm]int64{
	domain.RealmEarth: 50,
	domain.RealmMoon:  75,
	domain.RealmMars:  100,
}

// TierCapHours returns the session cap for tier. Unknown tiers get the free cap.
func TierCapHours(tier domain.MembershipTier) int {
	if c, ok := tierCaps[tier]; ok {
		return c
	}
	return tierCaps[domain.MembershipFree]
}

// ExperienceRate returns experience per hour for realm, 0 for unknown realms
func ExperienceRate(realm domain.Realm) int64 {
	return experienceRates[realm]
}

// ElapsedHours is the number of whole hours between start and end
func ElapsedHours(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Hour)
}

// Default reward table
const (
	DefaultDropChance   = 0.3
	DefaultDropQuantity = 1
	DefaultSessionLimit = 50
)

// Error message constants
const (
	ErrMsgBeginTxFailed        = "failed to begin transaction"
	ErrMsgCommitFailed         = "failed to commit transaction"
	ErrMsgGetCharacterFailed   = "failed to get character"
	ErrMsgGetMembershipFailed  = "failed to get membership"
	ErrMsgSetAfkFailed         = "failed to set afk window"
	ErrMsgCreateSessionFailed  = "failed to create afk session"
	ErrMsgGetSessionFailed     = "failed to get afk session"
	ErrMsgCompleteFailed       = "failed to complete afk session"
	ErrMsgFinishCharFailed     = "failed to credit character"
	ErrMsgCreditItemFailed     = "failed to credit reward item"
	ErrMsgListSessionsFailed   = "failed to list afk sessions"
	ErrMsgLoadRewardsFailed    = "failed to load afk reward table"
	ErrMsgInvalidRewardsConfig = "invalid afk reward table"
)

// Log message constants
const (
	LogMsgStartCalled        = "StartAfkSession called"
	LogMsgSessionStarted     = "AFK session started"
	LogMsgCompleteCalled     = "CompleteAfkSession called"
	LogMsgCompleteSkipped    = "AFK completion skipped"
	LogMsgSessionCompleted   = "AFK session completed"
	LogMsgUnknownRewardItem  = "Reward item missing from catalog, skipping credit"
	LogMsgPublishEventFailed = "Failed to publish afk event"
	LogMsgRewardsLoaded      = "AFK reward table loaded"
)
