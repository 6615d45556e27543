package tui

// splashArt is shown while the first refresh is in flight.
const splashArt = `
 ██████╗  ██████╗  ██████╗██╗  ██╗███████╗████████╗██████╗  █████╗ ███████╗██╗  ██╗
 ██╔══██╗██╔═══██╗██╔════╝██║ ██╔╝██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║  ██║
 ██████╔╝██║   ██║██║     █████╔╝ █████╗     ██║   ██║  ██║███████║███████╗███████║
 ██╔═══╝ ██║   ██║██║     ██╔═██╗ ██╔══╝     ██║   ██║  ██║██╔══██║╚════██║██╔══██║
 ██║     ╚██████╔╝╚██████╗██║  ██╗███████╗   ██║   ██████╔╝██║  ██║███████║██║  ██║
 ╚═╝      ╚═════╝  ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
`
