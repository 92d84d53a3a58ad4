package system

// Notifier receives fire-and-forget gameplay notifications.
type Notifier interface {
	OnCollectibleGathered()
	OnHazardContact()
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) OnCollectibleGathered() {}
func (NopNotifier) OnHazardContact()       {}
