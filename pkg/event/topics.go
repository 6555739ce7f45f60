package event

// Map topics.
var (
	WarheadLever         = newTopic[WarheadLeverEventArgs](KindWarheadLever)
	DoorInteract         = newTopic[DoorInteractEventArgs](KindDoorInteract)
	TriggerTesla         = newTopic[TriggerTeslaEventArgs](KindTriggerTesla)
	Scp914Upgrade        = newTopic[Scp914UpgradeEventArgs](KindScp914Upgrade)
	GeneratorUnlock      = newTopic[GeneratorUnlockEventArgs](KindGeneratorUnlock)
	GeneratorOpen        = newTopic[GeneratorOpenEventArgs](KindGeneratorOpen)
	GeneratorClose       = newTopic[GeneratorCloseEventArgs](KindGeneratorClose)
	GeneratorInsert      = newTopic[GeneratorInsertEventArgs](KindGeneratorInsert)
	GeneratorEject       = newTopic[GeneratorEjectEventArgs](KindGeneratorEject)
	GeneratorFinish      = newTopic[GeneratorFinishEventArgs](KindGeneratorFinish)
	PlayingRespawnEffect = newTopic[PlayingRespawnEffectEventArgs](KindPlayingRespawnEffect)
)

// Scp079 topics.
var (
	ChangingCamera      = newTopic[ChangingCameraEventArgs](KindChangingCamera)
	GainingExperience   = newTopic[GainingExperienceEventArgs](KindGainingExperience)
	GainingLevel        = newTopic[GainingLevelEventArgs](KindGainingLevel)
	InteractingTesla    = newTopic[InteractingTeslaEventArgs](KindInteractingTesla)
	TriggeringDoor      = newTopic[TriggeringDoorEventArgs](KindTriggeringDoor)
	ElevatorTeleporting = newTopic[ElevatorTeleportingEventArgs](KindElevatorTeleporting)
	LockingDown         = newTopic[LockingDownEventArgs](KindLockingDown)
	StartingSpeaker     = newTopic[StartingSpeakerEventArgs](KindStartingSpeaker)
	StoppingSpeaker     = newTopic[StoppingSpeakerEventArgs](KindStoppingSpeaker)
	Recontained         = newTopic[RecontainedEventArgs](KindRecontained)
)

// Player topics.
var (
	Hurting         = newTopic[HurtingEventArgs](KindHurting)
	Dying           = newTopic[DyingEventArgs](KindDying)
	SpawningRagdoll = newTopic[SpawningRagdollEventArgs](KindSpawningRagdoll)
)

// cancellables maps every vetoable kind to a binder for its topic.
var cancellables = map[Kind]cancellableBinder{
	KindWarheadLever:         bindCancellable(WarheadLever),
	KindDoorInteract:         bindCancellable(DoorInteract),
	KindTriggerTesla:         bindCancellable(TriggerTesla),
	KindScp914Upgrade:        bindCancellable(Scp914Upgrade),
	KindGeneratorUnlock:      bindCancellable(GeneratorUnlock),
	KindGeneratorOpen:        bindCancellable(GeneratorOpen),
	KindGeneratorClose:       bindCancellable(GeneratorClose),
	KindGeneratorInsert:      bindCancellable(GeneratorInsert),
	KindGeneratorEject:       bindCancellable(GeneratorEject),
	KindPlayingRespawnEffect: bindCancellable(PlayingRespawnEffect),

	KindChangingCamera:      bindCancellable(ChangingCamera),
	KindGainingExperience:   bindCancellable(GainingExperience),
	KindGainingLevel:        bindCancellable(GainingLevel),
	KindInteractingTesla:    bindCancellable(InteractingTesla),
	KindTriggeringDoor:      bindCancellable(TriggeringDoor),
	KindElevatorTeleporting: bindCancellable(ElevatorTeleporting),
	KindLockingDown:         bindCancellable(LockingDown),
	KindStartingSpeaker:     bindCancellable(StartingSpeaker),
	KindStoppingSpeaker:     bindCancellable(StoppingSpeaker),

	KindHurting:         bindCancellable(Hurting),
	KindDying:           bindCancellable(Dying),
	KindSpawningRagdoll: bindCancellable(SpawningRagdoll),
}
