package style

import "github.com/ByLCY/vellum/command"

// Transition computes the minimal command sequence that moves the
// printer from style before to style after. Attributes whose value is
// unchanged emit nothing. Attributes are always visited in one fixed
// order — bold, underline, double-strike, reverse, upside-down,
// rotation — so equal inputs yield byte-identical output.
func Transition(before, after StyleSet) []command.Command {
	var cmds []command.Command

	if before.Bold != after.Bold {
		cmds = append(cmds, command.SetEmphasized(after.Bold))
	}

	if before.Underline != after.Underline {
		// Double 与 Single 回到 None 时只发一条关闭指令，
		// 不存在“从 Double 降到 Single 再关闭”的分步指令。
		switch after.Underline {
		case UnderlineSingle:
			cmds = append(cmds, command.SetUnderline(command.UnderlineOneDot))
		case UnderlineDouble:
			cmds = append(cmds, command.SetUnderline(command.UnderlineTwoDot))
		default:
			cmds = append(cmds, command.SetUnderline(command.UnderlineOff))
		}
	}

	if before.DoubleStrike != after.DoubleStrike {
		cmds = append(cmds, command.SetDoubleStrike(after.DoubleStrike))
	}

	if before.Reverse != after.Reverse {
		cmds = append(cmds, command.SetReverse(after.Reverse))
	}

	if before.UpsideDown != after.UpsideDown {
		cmds = append(cmds, command.SetUpsideDown(after.UpsideDown))
	}

	if before.Rotated != after.Rotated {
		if after.Rotated {
			cmds = append(cmds, command.SetRotation(command.RotationClockwise90))
		} else {
			cmds = append(cmds, command.SetRotation(command.RotationOff))
		}
	}

	return cmds
}
