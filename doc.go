// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetsetup prints the setup guide for the Google Sheets API used by the WhatsApp Sheets Sync application.

sheets-setup is a documentation aid: it displays the client dependencies, OAuth scopes and API version needed to
access a Google Sheets worksheet along with the structure of a sample implementation. It never contacts Google.

sheets-setup supports the following commands:

  - instructions, to display the setup configuration and sample code (the default when no command is given)
  - steps, to list the Google Cloud Console steps and the environment variables used by the application
  - config, to display the setup configuration as text, JSON or YAML
  - sample, to display the sample implementation code in JavaScript or Go
  - check, to check a spreadsheet URL, a downloaded credentials file and the environment offline
  - version, to display the application version
*/
package sheetsetup
