package constant

// AsciiArtLogo is the application banner shown in the root command help.
const AsciiArtLogo = `
    _          _                ___ _
   /_\  _ _  (_)_ __  ___    | __| |_____ __ __
  / _ \| ' \ | | '  \/ -_)   | _|| / _ \ V  V /
 /_/ \_\_||_||_|_|_|_\___|   |_| |_\___/\_/\_/
`
