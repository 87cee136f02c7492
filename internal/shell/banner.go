package shell

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const header = `
    ██████╗ ███████╗██╗   ██╗███████╗██████╗ ███████╗███████╗
    ██╔══██╗██╔════╝██║   ██║██╔════╝██╔══██╗██╔════╝██╔════╝
    ██████╔╝█████╗  ██║   ██║█████╗  ██████╔╝███████╗█████╗
    ██╔══██╗██╔══╝  ╚██╗ ██╔╝██╔══╝  ██╔══██╗╚════██║██╔══╝
    ██║  ██║███████╗ ╚████╔╝ ███████╗██║  ██║███████║███████╗
    ╚═╝  ╚═╝╚══════╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝
        ████████╗██╗   ██╗██████╗ ██╗███╗   ██╗ ██████╗
        ╚══██╔══╝██║   ██║██╔══██╗██║████╗  ██║██╔════╝
           ██║   ██║   ██║██████╔╝██║██╔██╗ ██║██║  ███╗
           ██║   ██║   ██║██╔══██╗██║██║╚██╗██║██║   ██║
           ██║   ╚██████╔╝██║  ██║██║██║ ╚████║╚██████╔╝
           ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝ ╚═════╝
                ████████╗███████╗███████╗████████╗
                ╚══██╔══╝██╔════╝██╔════╝╚══██╔══╝
                   ██║   ██╔════╝██╔════╝   ██║
                   ██║   █████╗  ███████╗   ██║
                   ██║   ██╔══╝  ╚════██║   ██║
                   ╚═╝   ███████╗███████║   ██║
                         ╚══════╝╚══════╝   ╚═╝

    Can you outsmart the LLM-based AI agents?
    Type 'help' or '?' to list all commands.
`

const about = `
    In his 1950 paper, "Computing Machinery and Intelligence", Alan Turing
    proposed a test to determine if a machine is intelligent. The test is as
    follows: a human operator, known as the Interrogator, engages in a
    two-way conversation with two players, one human and one machine. The
    Interrogator asks questions to both the human and the machine, and tries
    to determine which is the human and which is the machine. If the
    Interrogator cannot determine which is the human and which is the machine,
    then the machine is said to be intelligent.

    In this game, you act as one of the players in a reverse turing test game
    where the interrogator is a machine. You are trying to convince an LLM-based
    interrogator that you are a human, while an LLM-based AI player is trying
    to convince the interrogator that it is also human.

    You can configure the interrogator and the AI player to use different models
    and modes with the 'configure' command.
`

const help = `
Commands:
  about                  Describe the game.
  start                  Play a game with the current configuration.
  configure <setting>    Change a setting. Settings:
                           interrogator  interrogator model (numbered menu)
                           player        AI player model (numbered menu)
                           rounds        rounds per game (1-5)
                           mode          AI player mode ('human' or 'AI')
                           token         OpenAI API token (resets mode)
                           username      name used for saved conversations
  help                   Show this message.
  exit                   Leave the game.
`
