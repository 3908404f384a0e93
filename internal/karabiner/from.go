package karabiner

// buildFromBlock turns the config's trigger spec into the matching from
// block. The caller has already validated the config, so a simultaneous
// config is known to carry a chord and any other config a single
// identifier.
func buildFromBlock(cfg ButtonConfig) FromBlock {
	var from FromBlock

	if cfg.Behavior == BehaviorSimultaneous {
		members := make([]InputKey, 0, len(cfg.Chord))
		for _, id := range cfg.Chord {
			members = append(members, ClassifyInput(id))
		}
		from.Simultaneous = members
		from.SimultaneousOptions = &SimultaneousOptions{
			KeyDownOrder:                 "insensitive",
			DetectKeyDownUninterruptedly: true,
		}
	} else {
		if IsPointingButton(cfg.ButtonID) {
			from.PointingButton = cfg.ButtonID
		} else {
			from.KeyCode = cfg.ButtonID
		}
	}

	if len(cfg.MandatoryModifiers) > 0 {
		from.Modifiers = &FromModifiers{
			Mandatory: append([]string(nil), cfg.MandatoryModifiers...),
		}
	}

	return from
}
